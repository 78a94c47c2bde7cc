package model

import "github.com/google/uuid"

// newID assigns a time-ordered UUID when the caller did not set one.
func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// AllModels lists every table model, in dependency order, for schema migration.
func AllModels() []any {
	return []any{
		&UserModel{},
		&PlantModel{},
		&CareScheduleModel{},
		&CareTaskModel{},
		&NotificationLogModel{},
	}
}
