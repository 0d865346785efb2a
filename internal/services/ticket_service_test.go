package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/teamhub/teamhub/internal/models"
	"github.com/teamhub/teamhub/internal/roles"
	"github.com/teamhub/teamhub/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TicketServiceTestSuite defines the test suite for TicketService
type TicketServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	store   *store.GormStore
	service *TicketService
}

// SetupTest runs before each test
func (suite *TicketServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Document{},
		&models.Ticket{},
		&models.GlobalSettings{},
	)
	suite.Require().NoError(err)

	suite.store = store.NewGormStore(suite.db)
	suite.service = NewTicketService(suite.store, nil)
}

// TearDownTest runs after each test
func (suite *TicketServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TicketServiceTestSuite) createTicket(role roles.Role, input CreateTicketInput) *models.Ticket {
	ticket, err := suite.service.Create(role, input)
	suite.Require().NoError(err)
	return ticket
}

func (suite *TicketServiceTestSuite) TestCreate_Defaults() {
	ticket := suite.createTicket(roles.RoleAdmin, CreateTicketInput{
		Title:   "fix login",
		Visible: true,
	})

	suite.Equal(models.TicketStatusBacklog, ticket.Status)
	suite.Equal(models.PriorityMedium, ticket.Priority)
	suite.False(ticket.CreatedByTeam)
	suite.False(ticket.DeletedByTeam)
}

func (suite *TicketServiceTestSuite) TestCreate_TeamTicketsAlwaysVisible() {
	ticket := suite.createTicket(roles.RoleTeam, CreateTicketInput{
		Title:   "team request",
		Visible: false,
	})

	suite.True(ticket.Visible)
	suite.True(ticket.CreatedByTeam)
}

func (suite *TicketServiceTestSuite) TestCreate_AdminMayCreateHidden() {
	ticket := suite.createTicket(roles.RoleAdmin, CreateTicketInput{
		Title:   "triage later",
		Visible: false,
	})

	suite.False(ticket.Visible)
}

func (suite *TicketServiceTestSuite) TestCreate_Validation() {
	_, err := suite.service.Create(roles.RoleAdmin, CreateTicketInput{Title: "  "})
	suite.ErrorIs(err, ErrTitleRequired)

	_, err = suite.service.Create(roles.RoleAdmin, CreateTicketInput{Title: "t", Status: "archived"})
	suite.ErrorIs(err, ErrInvalidStatus)

	_, err = suite.service.Create(roles.RoleAdmin, CreateTicketInput{Title: "t", Priority: "blocker"})
	suite.ErrorIs(err, ErrInvalidPriority)

	_, err = suite.service.Create(roles.RoleNone, CreateTicketInput{Title: "t"})
	suite.ErrorIs(err, ErrForbidden)
}

func (suite *TicketServiceTestSuite) TestCreate_TeamCannotStartInDone() {
	_, err := suite.service.Create(roles.RoleTeam, CreateTicketInput{
		Title:  "sneaky",
		Status: string(models.TicketStatusDone),
	})
	suite.ErrorIs(err, ErrDoneRestricted)

	ticket := suite.createTicket(roles.RoleAdmin, CreateTicketInput{
		Title:   "finished on arrival",
		Status:  string(models.TicketStatusDone),
		Visible: true,
	})
	suite.Equal(models.TicketStatusDone, ticket.Status)
}

func (suite *TicketServiceTestSuite) TestCreate_AssigneeRestriction() {
	restricted := NewTicketService(suite.store, []string{"alice", "bob"})

	_, err := restricted.Create(roles.RoleAdmin, CreateTicketInput{Title: "t", Assignee: "mallory"})
	suite.ErrorIs(err, ErrUnknownAssignee)

	ticket, err := restricted.Create(roles.RoleAdmin, CreateTicketInput{Title: "t", Assignee: "Alice", Visible: true})
	suite.Require().NoError(err)
	suite.Equal("Alice", ticket.Assignee)

	// Unassigned is always allowed
	_, err = restricted.Create(roles.RoleAdmin, CreateTicketInput{Title: "t2", Visible: true})
	suite.NoError(err)
}

func (suite *TicketServiceTestSuite) TestUpdate_NeverTouchesLifecycleFlags() {
	ticket := suite.createTicket(roles.RoleTeam, CreateTicketInput{Title: "team ticket"})

	desc := "updated description"
	err := suite.service.Update(roles.RoleAdmin, ticket.ID, UpdateTicketInput{Description: &desc})
	suite.Require().NoError(err)

	loaded, err := suite.store.GetTicket(ticket.ID)
	suite.Require().NoError(err)
	suite.Equal("updated description", loaded.Description)
	suite.True(loaded.CreatedByTeam)
	suite.False(loaded.DeletedByTeam)
}

// A team actor may shuffle tickets between any columns except into done;
// an admin performing the identical move succeeds.
func (suite *TicketServiceTestSuite) TestMove_DoneGate() {
	ticket := suite.createTicket(roles.RoleTeam, CreateTicketInput{Title: "work item"})

	suite.Require().NoError(suite.service.Move(roles.RoleTeam, ticket.ID, string(models.TicketStatusInProgress)))
	suite.Require().NoError(suite.service.Move(roles.RoleTeam, ticket.ID, string(models.TicketStatusBacklog)))

	err := suite.service.Move(roles.RoleTeam, ticket.ID, string(models.TicketStatusDone))
	suite.ErrorIs(err, ErrDoneRestricted)

	suite.Require().NoError(suite.service.Move(roles.RoleAdmin, ticket.ID, string(models.TicketStatusDone)))

	loaded, err := suite.store.GetTicket(ticket.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TicketStatusDone, loaded.Status)

	// A done ticket stays put when the team re-selects done, and the team
	// may still pull it back out
	suite.Require().NoError(suite.service.Move(roles.RoleTeam, ticket.ID, string(models.TicketStatusDone)))
	suite.Require().NoError(suite.service.Move(roles.RoleTeam, ticket.ID, string(models.TicketStatusInReview)))
}

func (suite *TicketServiceTestSuite) TestMove_Validation() {
	ticket := suite.createTicket(roles.RoleAdmin, CreateTicketInput{Title: "t", Visible: true})

	suite.ErrorIs(suite.service.Move(roles.RoleAdmin, ticket.ID, "shipped"), ErrInvalidStatus)
	suite.ErrorIs(suite.service.Move(roles.RoleNone, ticket.ID, string(models.TicketStatusTodo)), ErrForbidden)
}

// Team deletes hide the ticket from the team only; the admin still sees it
// and can bring it back. An admin delete is final.
func (suite *TicketServiceTestSuite) TestDelete_SoftVersusHard() {
	ticket := suite.createTicket(roles.RoleTeam, CreateTicketInput{Title: "disputed"})

	suite.Require().NoError(suite.service.Delete(roles.RoleTeam, ticket.ID))

	loaded, err := suite.store.GetTicket(ticket.ID)
	suite.Require().NoError(err)
	suite.True(loaded.DeletedByTeam)

	teamView, err := suite.service.List(roles.RoleTeam)
	suite.Require().NoError(err)
	suite.Empty(teamView)

	adminView, err := suite.service.List(roles.RoleAdmin)
	suite.Require().NoError(err)
	suite.Len(adminView, 1)

	suite.Require().NoError(suite.service.Restore(roles.RoleAdmin, ticket.ID))
	loaded, err = suite.store.GetTicket(ticket.ID)
	suite.Require().NoError(err)
	suite.False(loaded.DeletedByTeam)

	suite.Require().NoError(suite.service.Delete(roles.RoleAdmin, ticket.ID))
	_, err = suite.store.GetTicket(ticket.ID)
	suite.ErrorIs(err, store.ErrNotFound)

	// A hard-deleted ticket cannot be restored
	suite.ErrorIs(suite.service.Restore(roles.RoleAdmin, ticket.ID), store.ErrNotFound)
}

func (suite *TicketServiceTestSuite) TestRestore_AdminOnly() {
	ticket := suite.createTicket(roles.RoleTeam, CreateTicketInput{Title: "t"})
	suite.Require().NoError(suite.service.Delete(roles.RoleTeam, ticket.ID))

	suite.ErrorIs(suite.service.Restore(roles.RoleTeam, ticket.ID), ErrForbidden)
}

func (suite *TicketServiceTestSuite) TestToggleVisibility_AdminOnly() {
	ticket := suite.createTicket(roles.RoleAdmin, CreateTicketInput{Title: "t", Visible: true})

	suite.ErrorIs(suite.service.ToggleVisibility(roles.RoleTeam, ticket.ID), ErrForbidden)

	suite.Require().NoError(suite.service.ToggleVisibility(roles.RoleAdmin, ticket.ID))
	loaded, err := suite.store.GetTicket(ticket.ID)
	suite.Require().NoError(err)
	suite.False(loaded.Visible)
}

func (suite *TicketServiceTestSuite) TestGet_VisibilityConjunction() {
	hidden := suite.createTicket(roles.RoleAdmin, CreateTicketInput{Title: "hidden", Visible: false})

	_, err := suite.service.Get(roles.RoleTeam, hidden.ID)
	suite.ErrorIs(err, store.ErrNotFound)

	loaded, err := suite.service.Get(roles.RoleAdmin, hidden.ID)
	suite.Require().NoError(err)
	suite.Equal(hidden.ID, loaded.ID)
}

func TestTicketServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TicketServiceTestSuite))
}
