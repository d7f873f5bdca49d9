package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linuxbro/blog_go_server/internal/model"
	"github.com/linuxbro/blog_go_server/internal/repository"
	"github.com/linuxbro/blog_go_server/internal/testutil"
)

func setupSiteService(t *testing.T) (*SiteService, *gorm.DB, func()) {
	db := testutil.SetupTestDB(t)

	siteRepo := repository.NewSiteRepository(db)
	svc := NewSiteService(siteRepo)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return svc, db, cleanup
}

func TestSiteService_GetSection_OrderedByPosition(t *testing.T) {
	svc, db, cleanup := setupSiteService(t)
	defer cleanup()

	// 乱序写入，按 position 取回
	require.NoError(t, db.Create(&model.SiteContent{
		Section: model.SiteSectionTeam, Title: "Bob", Position: 2,
	}).Error)
	require.NoError(t, db.Create(&model.SiteContent{
		Section: model.SiteSectionTeam, Title: "Alice", Position: 1,
	}).Error)
	require.NoError(t, db.Create(&model.SiteContent{
		Section: model.SiteSectionAbout, Title: "About us", Body: "Hello",
	}).Error)

	items, err := svc.GetSection(model.SiteSectionTeam)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Alice", items[0].Title)
	assert.Equal(t, "Bob", items[1].Title)
}

func TestSiteService_GetSection_UnknownSection(t *testing.T) {
	svc, _, cleanup := setupSiteService(t)
	defer cleanup()

	_, err := svc.GetSection("careers")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSiteService_GetSection_Empty(t *testing.T) {
	svc, _, cleanup := setupSiteService(t)
	defer cleanup()

	items, err := svc.GetSection(model.SiteSectionContact)
	require.NoError(t, err)
	assert.Empty(t, items)
}
