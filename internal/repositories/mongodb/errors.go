package mongodb

import (
	"errors"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
)

// translate maps driver errors onto the shared taxonomy
func translate(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.NotFound(entity, id)
	}
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.Conflict("%s %v", entity, id)
	}
	return err
}
