package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	demoStoreID    = "store-demo"
	demoRegisterID = "register-demo-1"
	demoUserUID    = "demo-dm"
	demoUserEmail  = "dm@gestorcash.example"
)

// seed upserts the demo rows; running it twice leaves one copy of each.
func seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stmts := []struct {
			what string
			sql  string
			args []interface{}
		}{
			{"store", `
				INSERT INTO stores (id, name, code, active)
				VALUES (?, ?, ?, true)
				ON CONFLICT (id) DO UPDATE
				SET name = EXCLUDED.name, code = EXCLUDED.code, active = true`,
				[]interface{}{demoStoreID, "Demo Store", "DEMO"}},
			{"register", `
				INSERT INTO cash_registers (id, store_id, number, active)
				VALUES (?, ?, 1, true)
				ON CONFLICT (id) DO UPDATE
				SET store_id = EXCLUDED.store_id, number = EXCLUDED.number, active = true`,
				[]interface{}{demoRegisterID, demoStoreID}},
			{"user", `
				INSERT INTO users (uid, email, display_name, role, store_id, active)
				VALUES (?, ?, ?, 'DM', ?, true)
				ON CONFLICT (uid) DO UPDATE
				SET email = EXCLUDED.email,
				    display_name = EXCLUDED.display_name,
				    role = EXCLUDED.role,
				    store_id = EXCLUDED.store_id,
				    active = true`,
				[]interface{}{demoUserUID, demoUserEmail, "Demo District Manager", demoStoreID}},
		}
		for _, s := range stmts {
			if err := tx.Exec(s.sql, s.args...).Error; err != nil {
				return fmt.Errorf("seed %s: %w", s.what, err)
			}
		}
		return nil
	})
}
