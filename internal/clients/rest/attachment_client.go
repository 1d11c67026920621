package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	portsclients "github.com/splitgem/payment-manager/internal/core/ports/clients"
)

// AttachmentStoreClient calls the external attachment service.
type AttachmentStoreClient struct {
	restClient
}

// NewAttachmentStoreClient creates a client for the attachment store at baseURL.
func NewAttachmentStoreClient(baseURL string, timeout time.Duration) *AttachmentStoreClient {
	return &AttachmentStoreClient{restClient: newRestClient(baseURL, "attachment-store", timeout)}
}

var _ portsclients.AttachmentStoreClient = (*AttachmentStoreClient)(nil)

type groupAttachmentResponse struct {
	ID string `json:"id"`
}

// GenerateBlankAttachment requests a blank attachment for the group and user.
func (c *AttachmentStoreClient) GenerateBlankAttachment(ctx context.Context, groupID, userID string) (string, error) {
	var resp groupAttachmentResponse
	url := fmt.Sprintf("%s/internal/groups/%s/users/%s/generate/blank", c.baseURL, groupID, userID)
	if err := c.doJSON(ctx, http.MethodPost, url, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}
