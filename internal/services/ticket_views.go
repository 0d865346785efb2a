package services

import (
	"strings"

	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/roles"
)

// TicketFilter narrows a ticket snapshot. Zero values pass everything.
type TicketFilter struct {
	Query    string
	Priority string
	Assignee string
}

// TicketsVisibleTo narrows a snapshot to what the role may see. Admins see
// every ticket; other roles only see visible tickets the team has not
// deleted.
func TicketsVisibleTo(tickets []models.Ticket, role roles.Role) []models.Ticket {
	if role == roles.RoleAdmin {
		return tickets
	}
	out := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Visible && !t.DeletedByTeam {
			out = append(out, t)
		}
	}
	return out
}

// FilterTickets applies the free-text, priority and assignee filters in
// conjunction. The search is a case-insensitive substring match over title,
// description, assignee and tags.
func FilterTickets(tickets []models.Ticket, filter TicketFilter) []models.Ticket {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if filter.Priority != "" && string(t.Priority) != filter.Priority {
			continue
		}
		if filter.Assignee != "" && !strings.EqualFold(t.Assignee, filter.Assignee) {
			continue
		}
		if query != "" && !strings.Contains(ticketHaystack(t), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TicketColumns partitions tickets into the five board columns, preserving
// snapshot order within each column.
func TicketColumns(tickets []models.Ticket) map[models.TicketStatus][]models.Ticket {
	columns := make(map[models.TicketStatus][]models.Ticket, len(models.BoardColumns()))
	for _, col := range models.BoardColumns() {
		columns[col] = []models.Ticket{}
	}
	for _, t := range tickets {
		if _, ok := columns[t.Status]; ok {
			columns[t.Status] = append(columns[t.Status], t)
		}
	}
	return columns
}

func ticketHaystack(t models.Ticket) string {
	parts := []string{t.Title, t.Description, t.Assignee}
	parts = append(parts, t.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
