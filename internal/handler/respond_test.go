package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhavlik/pricebook/internal/domain"
)

func TestErrorMessage_StripsLayerPrefixes(t *testing.T) {
	err := fmt.Errorf("service.EntryService.Delete: %w",
		fmt.Errorf("repo.EntryRepo.Delete: %w", errors.New("connection refused")))

	assert.Equal(t, "connection refused", errorMessage(err))
}

func TestErrorMessage_SentinelDetailKept(t *testing.T) {
	err := fmt.Errorf("service.ShopService.Create: %w: shop %q already exists", domain.ErrConflict, "Tesco")

	assert.Equal(t, `conflict: shop "Tesco" already exists`, errorMessage(err))
}

func TestErrorMessage_PlainErrorUntouched(t *testing.T) {
	assert.Equal(t, "connection reset", errorMessage(errors.New("connection reset")))
}

func TestErrorMessage_Nil(t *testing.T) {
	assert.Equal(t, "", errorMessage(nil))
}
