package messages_test

import (
	"testing"

	"github.com/craftscrm/crm_backend/internal/messages"
	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownKeys(t *testing.T) {
	for _, key := range []string{
		messages.CompanyStore,
		messages.DealStore,
		messages.DealFirstDeleteTerm,
		messages.CompanyFirstDeleteDeals,
		messages.ProductFirstDeleteSales,
		messages.RecordNotFound,
		messages.GenericError,
		messages.SettingsUpdate,
	} {
		text, ok := messages.Resolve(key)
		assert.True(t, ok, "expected %s in catalog", key)
		assert.NotEmpty(t, text)
	}
}

func TestResolve_UnknownKey(t *testing.T) {
	text, ok := messages.Resolve("messages.nonexistent")
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestKeysCarryNamespace(t *testing.T) {
	assert.Equal(t, "messages.deal_first_delete_deal_term", messages.DealFirstDeleteTerm)
	assert.Equal(t, "messages.deal_store", messages.DealStore)
}
