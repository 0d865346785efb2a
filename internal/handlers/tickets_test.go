package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamhub/teamhub/internal/dto"
)

func createTicketViaAPI(t *testing.T, env *testEnv, cookies []*http.Cookie, payload map[string]any) dto.TicketDTO {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/tickets", payload, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.TicketDTO
	decodeJSON(t, w, &created)
	return created
}

func TestTickets_TeamCanCreate(t *testing.T) {
	env := setupTestEnv(t)
	team := env.loginAs(t, testTeamCode)

	created := createTicketViaAPI(t, env, team, map[string]any{
		"title": "team request",
		"tags":  "urgent,api",
	})

	assert.Equal(t, "backlog", created.Status)
	assert.Equal(t, "medium", created.Priority)
	assert.Equal(t, "urgent, api", created.TagsText)
	assert.True(t, created.Visible)
	// Team readers never see the triage badges
	assert.Nil(t, created.CreatedByTeam)
	assert.Nil(t, created.DeletedByTeam)
}

func TestTickets_AdminSeesTriageBadges(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.loginAs(t, testAdminCode)
	team := env.loginAs(t, testTeamCode)

	created := createTicketViaAPI(t, env, team, map[string]any{"title": "from the team"})

	w := env.request(t, http.MethodGet, "/api/tickets/"+created.ID, nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	var ticket dto.TicketDTO
	decodeJSON(t, w, &ticket)
	require.NotNil(t, ticket.CreatedByTeam)
	require.NotNil(t, ticket.DeletedByTeam)
	assert.True(t, *ticket.CreatedByTeam)
	assert.False(t, *ticket.DeletedByTeam)
}

// The identical move into done is rejected for the team and accepted for the
// admin; afterwards both roles see the ticket in the done column.
func TestTickets_MoveToDoneScenario(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.loginAs(t, testAdminCode)
	team := env.loginAs(t, testTeamCode)

	created := createTicketViaAPI(t, env, team, map[string]any{"title": "board item"})

	w := env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/move", map[string]string{"status": "done"}, team)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/move", map[string]string{"status": "done"}, admin)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookies := range [][]*http.Cookie{admin, team} {
		var board dto.BoardDTO
		decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets/board", nil, cookies), &board)
		require.Len(t, board.Columns["done"], 1)
		assert.Equal(t, created.ID, board.Columns["done"][0].ID)
	}
}

func TestTickets_MoveBetweenOtherColumns(t *testing.T) {
	env := setupTestEnv(t)
	team := env.loginAs(t, testTeamCode)

	created := createTicketViaAPI(t, env, team, map[string]any{"title": "wip"})

	for _, status := range []string{"inprogress", "inreview", "todo", "backlog"} {
		w := env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/move", map[string]string{"status": status}, team)
		require.Equal(t, http.StatusOK, w.Code, "move to %s", status)
	}

	w := env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/move", map[string]string{"status": "shipped"}, team)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Team delete hides the ticket from the team view only; admin restore brings
// it back; admin delete is permanent.
func TestTickets_DeleteAndRestoreScenario(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.loginAs(t, testAdminCode)
	team := env.loginAs(t, testTeamCode)

	created := createTicketViaAPI(t, env, team, map[string]any{"title": "disputed"})

	require.Equal(t, http.StatusOK, env.request(t, http.MethodDelete, "/api/tickets/"+created.ID, nil, team).Code)

	var teamList, adminList dto.TicketListResponse
	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets", nil, team), &teamList)
	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets", nil, admin), &adminList)
	assert.Equal(t, 0, teamList.Total)
	require.Equal(t, 1, adminList.Total)
	require.NotNil(t, adminList.Tickets[0].DeletedByTeam)
	assert.True(t, *adminList.Tickets[0].DeletedByTeam)

	assert.Equal(t, http.StatusForbidden, env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/restore", nil, team).Code)
	require.Equal(t, http.StatusOK, env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/restore", nil, admin).Code)

	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets", nil, team), &teamList)
	assert.Equal(t, 1, teamList.Total)

	require.Equal(t, http.StatusOK, env.request(t, http.MethodDelete, "/api/tickets/"+created.ID, nil, admin).Code)
	assert.Equal(t, http.StatusNotFound, env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/restore", nil, admin).Code)
}

func TestTickets_SearchFilter(t *testing.T) {
	env := setupTestEnv(t)
	team := env.loginAs(t, testTeamCode)

	createTicketViaAPI(t, env, team, map[string]any{
		"title": "API outage",
		"tags":  "urgent,api",
	})
	createTicketViaAPI(t, env, team, map[string]any{"title": "tidy desk"})

	var list dto.TicketListResponse
	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets?q=urgent", nil, team), &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "API outage", list.Tickets[0].Title)

	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets?q=URGENT", nil, team), &list)
	assert.Equal(t, 1, list.Total)
}

func TestTickets_PriorityAndAssigneeFilters(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.loginAs(t, testAdminCode)

	createTicketViaAPI(t, env, admin, map[string]any{
		"title":    "critical for alice",
		"priority": "critical",
		"assignee": "alice",
		"visible":  true,
	})
	createTicketViaAPI(t, env, admin, map[string]any{
		"title":    "low for bob",
		"priority": "low",
		"assignee": "bob",
		"visible":  true,
	})

	var list dto.TicketListResponse
	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets?priority=critical", nil, admin), &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "critical for alice", list.Tickets[0].Title)

	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets?assignee=bob", nil, admin), &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "low for bob", list.Tickets[0].Title)
}

func TestTickets_HiddenTicketInvisibleToTeam(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.loginAs(t, testAdminCode)
	team := env.loginAs(t, testTeamCode)

	created := createTicketViaAPI(t, env, admin, map[string]any{
		"title":   "internal triage",
		"visible": false,
	})

	assert.Equal(t, http.StatusNotFound, env.request(t, http.MethodGet, "/api/tickets/"+created.ID, nil, team).Code)

	require.Equal(t, http.StatusOK, env.request(t, http.MethodPost, "/api/tickets/"+created.ID+"/visibility", nil, admin).Code)
	assert.Equal(t, http.StatusOK, env.request(t, http.MethodGet, "/api/tickets/"+created.ID, nil, team).Code)
}

func TestTickets_PartialUpdate(t *testing.T) {
	env := setupTestEnv(t)
	team := env.loginAs(t, testTeamCode)

	created := createTicketViaAPI(t, env, team, map[string]any{"title": "before"})

	w := env.request(t, http.MethodPatch, "/api/tickets/"+created.ID, map[string]any{
		"priority": "high",
	}, team)
	require.Equal(t, http.StatusOK, w.Code)

	var ticket dto.TicketDTO
	decodeJSON(t, env.request(t, http.MethodGet, "/api/tickets/"+created.ID, nil, team), &ticket)
	assert.Equal(t, "before", ticket.Title)
	assert.Equal(t, "high", ticket.Priority)

	w = env.request(t, http.MethodPatch, "/api/tickets/"+created.ID, map[string]any{
		"priority": "blocker",
	}, team)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
