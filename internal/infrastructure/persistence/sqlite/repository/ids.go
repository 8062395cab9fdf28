package repository

import "github.com/google/uuid"

func newImageRowID() string {
	return uuid.NewString()
}
