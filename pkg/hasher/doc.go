// Package hasher provides a bcrypt implementation of the password hashing
// collaborator used by the auth service.
package hasher
