package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	now   time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = NewRepositoryProvider(NewStore())
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) saveWorkspace(id, owner, name string) {
	s.Require().NoError(s.repos.WorkspaceRepo.SaveWorkspace(s.ctx, domain.Workspace{
		WorkspaceID: id, OwnerID: owner, Name: name, CreatedAt: s.now,
	}))
}

func (s *RepositoryTestSuite) saveIdea(id, workspaceID, author string) {
	s.Require().NoError(s.repos.IdeaRepo.SaveIdea(s.ctx, domain.Idea{
		IdeaID: id, WorkspaceID: workspaceID, AuthorID: author, CreatedAt: s.now, UpdatedAt: s.now,
	}))
}

func (s *RepositoryTestSuite) TestListWorkspacesKeepsInsertionOrderPerOwner() {
	s.saveWorkspace("ws-b", "alice", "Beta")
	s.saveWorkspace("ws-x", "bob", "Other")
	s.saveWorkspace("ws-a", "alice", "Alpha")

	list, err := s.repos.WorkspaceRepo.ListWorkspacesByOwner(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("ws-b", list[0].WorkspaceID)
	s.Equal("ws-a", list[1].WorkspaceID)

	empty, err := s.repos.WorkspaceRepo.ListWorkspacesByOwner(s.ctx, "carol")
	s.Require().NoError(err)
	s.NotNil(empty)
	s.Empty(empty)
}

func (s *RepositoryTestSuite) TestSearchWorkspacesIsCaseInsensitive() {
	s.saveWorkspace("ws-1", "alice", "Launch Plan")
	s.saveWorkspace("ws-2", "alice", "Retro notes")
	s.saveWorkspace("ws-3", "bob", "launch party")

	found, err := s.repos.WorkspaceRepo.SearchWorkspacesByOwner(s.ctx, "alice", "LAUNCH")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("ws-1", found[0].WorkspaceID)
}

func (s *RepositoryTestSuite) TestDuplicateWorkspaceID() {
	s.saveWorkspace("ws-1", "alice", "One")
	err := s.repos.WorkspaceRepo.SaveWorkspace(s.ctx, domain.Workspace{WorkspaceID: "ws-1", OwnerID: "alice", Name: "Again"})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestRenameMissingWorkspace() {
	err := s.repos.WorkspaceRepo.RenameWorkspace(s.ctx, "nope", "x")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestCascadeDeleteRemovesOnlyThatWorkspacesIdeas() {
	s.saveWorkspace("ws-1", "alice", "One")
	s.saveWorkspace("ws-2", "alice", "Two")
	s.saveIdea("i-1", "ws-1", "alice")
	s.saveIdea("i-2", "ws-2", "alice")
	s.saveIdea("i-3", "ws-1", "bob")

	s.Require().NoError(s.repos.WorkspaceRepo.DeleteWorkspaceCascade(s.ctx, "ws-1"))

	ws, err := s.repos.WorkspaceRepo.FindWorkspaceByID(s.ctx, "ws-1")
	s.Require().NoError(err)
	s.False(ws.IsFound())

	for _, id := range []string{"i-1", "i-3"} {
		idea, err := s.repos.IdeaRepo.FindIdeaByID(s.ctx, id)
		s.Require().NoError(err)
		s.False(idea.IsFound(), id)
	}
	survivors, err := s.repos.IdeaRepo.ListIdeasByWorkspace(s.ctx, "ws-2")
	s.Require().NoError(err)
	s.Len(survivors, 1)

	byBob, err := s.repos.IdeaRepo.ListIdeasByAuthor(s.ctx, "bob")
	s.Require().NoError(err)
	s.Empty(byBob)

	// Deleting again is harmless.
	s.NoError(s.repos.WorkspaceRepo.DeleteWorkspaceCascade(s.ctx, "ws-1"))
}

func (s *RepositoryTestSuite) TestSaveIdeaIntoMissingWorkspace() {
	err := s.repos.IdeaRepo.SaveIdea(s.ctx, domain.Idea{IdeaID: "i-1", WorkspaceID: "gone", AuthorID: "alice"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestUpdateIdeaContentStrictlyIncreasesUpdatedAt() {
	s.saveWorkspace("ws-1", "alice", "One")
	s.saveIdea("i-1", "ws-1", "alice")

	// A writer whose clock lags behind still moves updatedAt forward.
	first, err := s.repos.IdeaRepo.UpdateIdeaContent(s.ctx, "i-1", "x", s.now.Add(-time.Hour))
	s.Require().NoError(err)
	s.True(first.After(s.now))

	second, err := s.repos.IdeaRepo.UpdateIdeaContent(s.ctx, "i-1", "y", s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), second)

	idea, err := s.repos.IdeaRepo.FindIdeaByID(s.ctx, "i-1")
	s.Require().NoError(err)
	got, _ := idea.Get()
	s.Equal("y", got.ContentHTML)
	s.Equal(second, got.UpdatedAt)

	_, err = s.repos.IdeaRepo.UpdateIdeaContent(s.ctx, "missing", "z", s.now)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryTestSuite) TestConcurrentUpdatesLastWriterWins() {
	s.saveWorkspace("ws-1", "alice", "One")
	s.saveIdea("i-1", "ws-1", "alice")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		maxSeen time.Time
		last    string
	)
	for _, content := range []string{"x", "y", "z", "w"} {
		wg.Add(1)
		go func(content string) {
			defer wg.Done()
			at, err := s.repos.IdeaRepo.UpdateIdeaContent(s.ctx, "i-1", content, s.now)
			s.NoError(err)
			mu.Lock()
			if at.After(maxSeen) {
				maxSeen, last = at, content
			}
			mu.Unlock()
		}(content)
	}
	wg.Wait()

	idea, err := s.repos.IdeaRepo.FindIdeaByID(s.ctx, "i-1")
	s.Require().NoError(err)
	got, _ := idea.Get()
	s.Equal(last, got.ContentHTML)
	s.Equal(maxSeen, got.UpdatedAt)
}

func (s *RepositoryTestSuite) TestDeleteIdeaIsIdempotent() {
	s.saveWorkspace("ws-1", "alice", "One")
	s.saveIdea("i-1", "ws-1", "alice")

	s.NoError(s.repos.IdeaRepo.DeleteIdea(s.ctx, "i-1"))
	s.NoError(s.repos.IdeaRepo.DeleteIdea(s.ctx, "i-1"))
	s.NoError(s.repos.IdeaRepo.DeleteIdea(s.ctx, "never-existed"))
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
