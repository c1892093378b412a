package hepsiburadaclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

func TestParseCredentials(t *testing.T) {
	tests := []struct {
		name    string
		bundle  map[string]string
		wantErr bool
	}{
		{
			name: "aceita pacote completo",
			bundle: map[string]string{
				"api_key":     "hb-key",
				"api_secret":  "hb-secret",
				"merchant_id": "M-9001",
			},
		},
		{
			name: "rejeita pacote sem api_secret",
			bundle: map[string]string{
				"api_key":     "hb-key",
				"merchant_id": "M-9001",
			},
			wantErr: true,
		},
		{
			name: "rejeita pacote sem merchant_id",
			bundle: map[string]string{
				"api_key":    "hb-key",
				"api_secret": "hb-secret",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := ParseCredentials(tt.bundle)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "hb-key", creds.APIKey)
			assert.Equal(t, "M-9001", creds.MerchantID)
		})
	}
}

func TestClient_TranslateRemoteStatus(t *testing.T) {
	client := &Client{}

	tests := []struct {
		remoteStatus string
		want         domain.OrderStatus
		mapped       bool
	}{
		{"Open", domain.OrderStatusProcessing, true},
		{"Approved", domain.OrderStatusProcessing, true},
		{"Packaged", domain.OrderStatusProcessing, true},
		{"ReadyToShip", domain.OrderStatusProcessing, true},
		{"InTransit", domain.OrderStatusShipped, true},
		{"Shipped", domain.OrderStatusShipped, true},
		{"Delivered", domain.OrderStatusCompleted, true},
		{"CancelledByUser", domain.OrderStatusCancelled, true},
		{"CancelledBySap", domain.OrderStatusCancelled, true},
		{"ClaimCreated", domain.OrderStatusRefunded, true},
		{"Returned", domain.OrderStatusRefunded, true},
		{"UnderDispute", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run("status remoto "+tt.remoteStatus, func(t *testing.T) {
			status, mapped := client.TranslateRemoteStatus(tt.remoteStatus)
			assert.Equal(t, tt.mapped, mapped)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestCanonicalToRemoteCoversAllStatuses(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusCompleted,
		domain.OrderStatusCancelled,
		domain.OrderStatusRefunded,
	}

	for _, status := range statuses {
		remote, ok := canonicalToRemote[status]
		assert.True(t, ok, "status canônico %s sem tradução remota", status)
		assert.NotEmpty(t, remote)
	}
}
