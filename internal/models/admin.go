// internal/models/admin.go
package models

// AdminCredential holds the shared admin password. The value is either
// plaintext or a bcrypt hash.
type AdminCredential struct {
	Password string `json:"password"`
}
