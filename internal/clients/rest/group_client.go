package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/splitgem/payment-manager/internal/core/domain"
	portsclients "github.com/splitgem/payment-manager/internal/core/ports/clients"
)

// GroupManagerClient calls the external group service.
type GroupManagerClient struct {
	restClient
}

// NewGroupManagerClient creates a client for the group manager at baseURL.
func NewGroupManagerClient(baseURL string, timeout time.Duration) *GroupManagerClient {
	return &GroupManagerClient{restClient: newRestClient(baseURL, "group-manager", timeout)}
}

var _ portsclients.GroupManagerClient = (*GroupManagerClient)(nil)

type groupResponse struct {
	GroupID    string `json:"groupId"`
	Members    []struct {
		ID string `json:"id"`
	} `json:"members"`
	Currencies []struct {
		Code string `json:"code"`
	} `json:"currencies"`
}

type userGroupsResponse struct {
	Groups []struct {
		GroupID string `json:"groupId"`
	} `json:"groups"`
}

// GetGroup fetches the group's members and currencies.
func (c *GroupManagerClient) GetGroup(ctx context.Context, groupID string) (*domain.GroupData, error) {
	var resp groupResponse
	url := fmt.Sprintf("%s/internal/groups/%s", c.baseURL, groupID)
	if err := c.doJSON(ctx, http.MethodGet, url, &resp); err != nil {
		return nil, err
	}

	group := domain.GroupData{GroupID: resp.GroupID}
	for _, m := range resp.Members {
		group.Members = append(group.Members, domain.GroupMember{ID: m.ID})
	}
	for _, cur := range resp.Currencies {
		group.Currencies = append(group.Currencies, domain.Currency{Code: cur.Code})
	}
	return &group, nil
}

// GetUserGroups lists the ids of the groups the user belongs to.
func (c *GroupManagerClient) GetUserGroups(ctx context.Context, userID string) ([]string, error) {
	var resp userGroupsResponse
	url := fmt.Sprintf("%s/internal/groups/users/%s", c.baseURL, userID)
	if err := c.doJSON(ctx, http.MethodGet, url, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		ids = append(ids, g.GroupID)
	}
	return ids, nil
}
