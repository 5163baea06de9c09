package repository

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Models lists every persisted model for AutoMigrate.
func Models() []any {
	return []any{
		&userModel{},
		&hotelModel{},
		&roomModel{},
		&bookingModel{},
		&offerModel{},
	}
}

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("[]")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func stringsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	_ = json.Unmarshal(raw, &out)
	return out
}
