package service

import (
	apperrors "github.com/pratikupreti7/razorsnreviews-api/pkg/errors"
)

// authorizeOwner compares the authenticated subject against a resource's
// stored owner id. Identifier equality is case-sensitive with no
// normalization. Callers check existence first, so a missing resource is
// reported as not found rather than unauthorized.
func authorizeOwner(subjectID, ownerID string) error {
	if subjectID != ownerID {
		return apperrors.Unauthorized("you do not own this resource")
	}
	return nil
}
