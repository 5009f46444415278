package drink

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type DrinkSuite struct {
	suite.Suite
	db *gorm.DB
}

func TestDrinkSuite(t *testing.T) {
	suite.Run(t, new(DrinkSuite))
}

func (s *DrinkSuite) SetupTest() {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(models.All...))
	s.db = db
}

func (s *DrinkSuite) TearDownTest() {
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

func (s *DrinkSuite) service() Service {
	return New(context.Background()).WithDatabase(s.db)
}

func (s *DrinkSuite) matcha() *CreateRequest {
	return &CreateRequest{
		Title: "Matcha Shake",
		Recipe: []models.RecipePart{
			{Color: "green", Name: "matcha", Parts: 1},
			{Color: "white", Name: "milk", Parts: 3},
		},
	}
}

func (s *DrinkSuite) TestCreateReturnsLongRepresentation() {
	created, err := s.service().Create(s.matcha())
	s.Require().NoError(err)
	s.NotZero(created.ID)
	s.Equal("Matcha Shake", created.Title)
	s.Require().Len(created.Recipe, 2)
	s.Equal("matcha", created.Recipe[0].Name)
}

func (s *DrinkSuite) TestShortRepresentationHidesNames() {
	_, err := s.service().Create(s.matcha())
	s.Require().NoError(err)

	shorts, err := s.service().List()
	s.Require().NoError(err)
	s.Require().Len(shorts, 1)
	s.Equal("Matcha Shake", shorts[0].Title)
	s.Require().Len(shorts[0].Recipe, 2)
	s.Equal("green", shorts[0].Recipe[0].Color)
	s.Equal(1, shorts[0].Recipe[0].Parts)
}

func (s *DrinkSuite) TestListDetailKeepsNames() {
	_, err := s.service().Create(s.matcha())
	s.Require().NoError(err)

	longs, err := s.service().ListDetail()
	s.Require().NoError(err)
	s.Require().Len(longs, 1)
	s.Equal("milk", longs[0].Recipe[1].Name)
}

func (s *DrinkSuite) TestDuplicateTitleLeavesMenuUnchanged() {
	_, err := s.service().Create(s.matcha())
	s.Require().NoError(err)

	_, err = s.service().Create(s.matcha())
	s.Error(err)

	var count int64
	s.db.Model(&models.Drink{}).Count(&count)
	s.EqualValues(1, count)
}

func (s *DrinkSuite) TestUpdateReplacesTitleAndRecipe() {
	created, err := s.service().Create(s.matcha())
	s.Require().NoError(err)

	updated, err := s.service().Update(created.ID, &CreateRequest{
		Title:  "Water",
		Recipe: []models.RecipePart{{Color: "blue", Name: "water", Parts: 1}},
	})
	s.Require().NoError(err)
	s.Equal("Water", updated.Title)
	s.Require().Len(updated.Recipe, 1)
	s.Equal("water", updated.Recipe[0].Name)
}

func (s *DrinkSuite) TestUpdateMissing() {
	_, err := s.service().Update(42, s.matcha())
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *DrinkSuite) TestDelete() {
	created, err := s.service().Create(s.matcha())
	s.Require().NoError(err)

	s.Require().NoError(s.service().Delete(created.ID))

	var count int64
	s.db.Model(&models.Drink{}).Count(&count)
	s.Zero(count)
}

func (s *DrinkSuite) TestDeleteMissing() {
	s.ErrorIs(s.service().Delete(42), gorm.ErrRecordNotFound)
}
