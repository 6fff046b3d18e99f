//go:build integration
// +build integration

package repository

import (
	"fmt"
	"sync"
	"testing"

	"biolinker-backend/internal/database/models"
	apperrors "biolinker-backend/internal/errors"
	"biolinker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// LinkRepositoryTestSuite tests the LinkRepository
type LinkRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *LinkRepository
	userFactory    *testutils.UserFactory
	profileFactory *testutils.ProfileFactory
	linkFactory    *testutils.LinkFactory
}

// SetupSuite runs before all tests in the suite
func (suite *LinkRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLinkRepository(suite.baseTestSuite.DB)
	suite.userFactory = testutils.NewUserFactory()
	suite.profileFactory = testutils.NewProfileFactory()
	suite.linkFactory = testutils.NewLinkFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *LinkRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LinkRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LinkRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a user and its profile directly via gorm
func (suite *LinkRepositoryTestSuite) createProfile(email, username string) *models.Profile {
	user := suite.userFactory.WithEmail(email)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	profile := suite.profileFactory.WithUsername(user.ID, username)
	suite.NoError(suite.baseTestSuite.DB.Create(profile).Error)
	return profile
}

// helper to append links through the repository so positions are assigned
func (suite *LinkRepositoryTestSuite) appendLinks(profileID uint, titles ...string) []*models.Link {
	links := make([]*models.Link, 0, len(titles))
	for _, title := range titles {
		link := suite.linkFactory.Create(profileID, title, 0)
		suite.NoError(suite.repo.Create(link))
		links = append(links, link)
	}
	return links
}

// TestCreateAssignsAppendPosition tests that each new link lands at the end
func (suite *LinkRepositoryTestSuite) TestCreateAssignsAppendPosition() {
	profile := suite.createProfile("a@example.com", "alice")

	links := suite.appendLinks(profile.ID, "First", "Second", "Third")

	suite.Equal(0, links[0].Position)
	suite.Equal(1, links[1].Position)
	suite.Equal(2, links[2].Position)
}

// TestCreatePositionsAreIndependentPerProfile tests that the append counter is per profile
func (suite *LinkRepositoryTestSuite) TestCreatePositionsAreIndependentPerProfile() {
	alice := suite.createProfile("a@example.com", "alice")
	bob := suite.createProfile("b@example.com", "bob")

	suite.appendLinks(alice.ID, "A1", "A2")
	bobLinks := suite.appendLinks(bob.ID, "B1")

	suite.Equal(0, bobLinks[0].Position)
}

// TestCreateUnknownProfile tests that creating against a missing profile fails
func (suite *LinkRepositoryTestSuite) TestCreateUnknownProfile() {
	link := suite.linkFactory.Create(99999, "Orphan", 0)

	err := suite.repo.Create(link)

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

// TestConcurrentCreates tests that parallel creates never collide on a position
func (suite *LinkRepositoryTestSuite) TestConcurrentCreates() {
	profile := suite.createProfile("a@example.com", "alice")

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			link := suite.linkFactory.Create(profile.ID, fmt.Sprintf("Link %d", i), 0)
			errs[i] = suite.repo.Create(link)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		suite.NoError(err)
	}

	links, err := suite.repo.GetByProfileID(profile.ID)
	suite.NoError(err)
	suite.Len(links, n)

	// Positions must be exactly 0..n-1 with no duplicates or holes
	seen := make(map[int]bool, n)
	for _, l := range links {
		seen[l.Position] = true
	}
	for i := 0; i < n; i++ {
		suite.True(seen[i], "missing position %d", i)
	}
}

// TestGetByProfileIDOrdersByPosition tests listing order
func (suite *LinkRepositoryTestSuite) TestGetByProfileIDOrdersByPosition() {
	profile := suite.createProfile("a@example.com", "alice")
	suite.appendLinks(profile.ID, "First", "Second", "Third")

	links, err := suite.repo.GetByProfileID(profile.ID)

	suite.NoError(err)
	suite.Len(links, 3)
	suite.Equal("First", links[0].Title)
	suite.Equal("Second", links[1].Title)
	suite.Equal("Third", links[2].Title)
}

// TestGetByProfileIDEmpty tests that a profile without links lists as empty, not nil
func (suite *LinkRepositoryTestSuite) TestGetByProfileIDEmpty() {
	profile := suite.createProfile("a@example.com", "alice")

	links, err := suite.repo.GetByProfileID(profile.ID)

	suite.NoError(err)
	suite.NotNil(links)
	suite.Len(links, 0)
}

// TestReorder tests that reorder assigns position = index of the submitted order
func (suite *LinkRepositoryTestSuite) TestReorder() {
	profile := suite.createProfile("a@example.com", "alice")
	links := suite.appendLinks(profile.ID, "First", "Second", "Third")

	// Submit order: Third, First, Second
	reordered, err := suite.repo.Reorder(profile.ID, []uint{links[2].ID, links[0].ID, links[1].ID})

	suite.NoError(err)
	suite.Len(reordered, 3)
	suite.Equal("Third", reordered[0].Title)
	suite.Equal(0, reordered[0].Position)
	suite.Equal("First", reordered[1].Title)
	suite.Equal(1, reordered[1].Position)
	suite.Equal("Second", reordered[2].Title)
	suite.Equal(2, reordered[2].Position)
}

// TestReorderIdempotent tests that submitting the current order changes nothing
func (suite *LinkRepositoryTestSuite) TestReorderIdempotent() {
	profile := suite.createProfile("a@example.com", "alice")
	links := suite.appendLinks(profile.ID, "First", "Second")

	reordered, err := suite.repo.Reorder(profile.ID, []uint{links[0].ID, links[1].ID})

	suite.NoError(err)
	suite.Equal("First", reordered[0].Title)
	suite.Equal(0, reordered[0].Position)
	suite.Equal("Second", reordered[1].Title)
	suite.Equal(1, reordered[1].Position)
}

// TestReorderIgnoresForeignIDs tests that another profile's links are never renumbered
func (suite *LinkRepositoryTestSuite) TestReorderIgnoresForeignIDs() {
	alice := suite.createProfile("a@example.com", "alice")
	bob := suite.createProfile("b@example.com", "bob")
	aliceLinks := suite.appendLinks(alice.ID, "A1")
	bobLinks := suite.appendLinks(bob.ID, "B1", "B2")

	// Alice submits Bob's link ID; the scoped update must not touch it
	_, err := suite.repo.Reorder(alice.ID, []uint{bobLinks[0].ID, aliceLinks[0].ID})
	suite.NoError(err)

	var bobLink models.Link
	suite.NoError(suite.baseTestSuite.DB.First(&bobLink, bobLinks[0].ID).Error)
	suite.Equal(0, bobLink.Position)
}

// TestReorderUnknownProfile tests that reordering a missing profile fails
func (suite *LinkRepositoryTestSuite) TestReorderUnknownProfile() {
	_, err := suite.repo.Reorder(99999, []uint{1, 2})

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

// TestUpdate tests updating content fields without touching position
func (suite *LinkRepositoryTestSuite) TestUpdate() {
	profile := suite.createProfile("a@example.com", "alice")
	links := suite.appendLinks(profile.ID, "First", "Second")

	links[1].Title = "Renamed"
	links[1].IsVisible = false
	err := suite.repo.Update(links[1])
	suite.NoError(err)

	var updated models.Link
	suite.NoError(suite.baseTestSuite.DB.First(&updated, links[1].ID).Error)
	suite.Equal("Renamed", updated.Title)
	suite.False(updated.IsVisible)
	suite.Equal(1, updated.Position)
}

// TestUpdateForeignLink tests that updating another profile's link reports not found
func (suite *LinkRepositoryTestSuite) TestUpdateForeignLink() {
	alice := suite.createProfile("a@example.com", "alice")
	bob := suite.createProfile("b@example.com", "bob")
	bobLinks := suite.appendLinks(bob.ID, "B1")

	stolen := *bobLinks[0]
	stolen.ProfileID = alice.ID
	stolen.Title = "Hijacked"

	err := suite.repo.Update(&stolen)

	suite.ErrorIs(err, apperrors.ErrLinkNotFound)

	var untouched models.Link
	suite.NoError(suite.baseTestSuite.DB.First(&untouched, bobLinks[0].ID).Error)
	suite.Equal("B1", untouched.Title)
}

// TestDeleteLeavesGap tests that delete does not renumber survivors
func (suite *LinkRepositoryTestSuite) TestDeleteLeavesGap() {
	profile := suite.createProfile("a@example.com", "alice")
	links := suite.appendLinks(profile.ID, "First", "Second", "Third")

	err := suite.repo.Delete(profile.ID, links[1].ID)
	suite.NoError(err)

	remaining, err := suite.repo.GetByProfileID(profile.ID)
	suite.NoError(err)
	suite.Len(remaining, 2)
	// Relative order preserved, gap at position 1 persists
	suite.Equal("First", remaining[0].Title)
	suite.Equal(0, remaining[0].Position)
	suite.Equal("Third", remaining[1].Title)
	suite.Equal(2, remaining[1].Position)
}

// TestDeleteForeignLink tests that deleting another profile's link reports not found
func (suite *LinkRepositoryTestSuite) TestDeleteForeignLink() {
	alice := suite.createProfile("a@example.com", "alice")
	bob := suite.createProfile("b@example.com", "bob")
	bobLinks := suite.appendLinks(bob.ID, "B1")

	err := suite.repo.Delete(alice.ID, bobLinks[0].ID)

	suite.ErrorIs(err, apperrors.ErrLinkNotFound)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Link{}).Count(&count)
	suite.Equal(int64(1), count)
}

// TestDeleteThenCreateAppends tests that a fresh create still appends after a gap
func (suite *LinkRepositoryTestSuite) TestDeleteThenCreateAppends() {
	profile := suite.createProfile("a@example.com", "alice")
	links := suite.appendLinks(profile.ID, "First", "Second", "Third")

	suite.NoError(suite.repo.Delete(profile.ID, links[0].ID))

	// Two links remain, so the next create lands at position 2
	fresh := suite.linkFactory.Create(profile.ID, "Fourth", 0)
	suite.NoError(suite.repo.Create(fresh))
	suite.Equal(2, fresh.Position)
}

// TestGetByID tests retrieving a single link
func (suite *LinkRepositoryTestSuite) TestGetByID() {
	profile := suite.createProfile("a@example.com", "alice")
	links := suite.appendLinks(profile.ID, "First")

	found, err := suite.repo.GetByID(links[0].ID)

	suite.NoError(err)
	suite.Equal("First", found.Title)
}

// TestGetByIDNotFound tests the missing-link error
func (suite *LinkRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(99999)

	suite.ErrorIs(err, apperrors.ErrLinkNotFound)
}

// TestLinkRepositoryTestSuite runs the test suite
func TestLinkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LinkRepositoryTestSuite))
}
