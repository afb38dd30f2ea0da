// Package model holds the persisted record shapes. Each type maps to one table;
// field constraints are enforced by the dto layer before a record reaches here.
package model

import (
	"github.com/google/uuid"
)

// Expense categories accepted by the expenses table.
const (
	CategoryStoreSupplies = "store_supplies"
	CategoryMaintenance   = "maintenance"
	CategoryPaperwork     = "paperwork"
	CategoryTransport     = "transport"
)

// User roles: district manager, store manager, assistant store manager.
const (
	RoleDM  = "DM"
	RoleSM  = "SM"
	RoleASM = "ASM"
)

// newID returns the identifier for entities whose id is server-generated.
func newID() string { return uuid.NewString() }
