package nodegroup

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type NodeGroupSuite struct {
	suite.Suite
	db *gorm.DB
}

func TestNodeGroupSuite(t *testing.T) {
	suite.Run(t, new(NodeGroupSuite))
}

func (s *NodeGroupSuite) SetupTest() {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(models.All...))
	s.db = db
}

func (s *NodeGroupSuite) TearDownTest() {
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

func (s *NodeGroupSuite) service() Service {
	return New(context.Background()).WithDatabase(s.db)
}

func (s *NodeGroupSuite) TestCreateAndList() {
	resp, err := s.service().Create(&CreateRequest{
		Fabric: "fab1",
		Node1:  "leaf-101",
		Node2:  "leaf-102",
	})
	s.Require().NoError(err)
	s.NotZero(resp.Created)
	s.Equal(1, resp.TotalNodeGroups)

	list, err := s.service().List()
	s.Require().NoError(err)
	s.Equal(1, list.TotalNodeGroups)
	s.Equal("leaf-101", list.NodeGroups[0].Node1)
	s.Equal("leaf-102", list.NodeGroups[0].Node2)
}

func (s *NodeGroupSuite) TestUpdateReplacesEveryField() {
	created, err := s.service().Create(&CreateRequest{
		Fabric: "fab1",
		Node1:  "leaf-101",
		Node2:  "leaf-102",
	})
	s.Require().NoError(err)

	updated, err := s.service().Update(created.Created, &CreateRequest{
		Fabric: "fab2",
		Node1:  "leaf-201",
		Node2:  "leaf-202",
	})
	s.Require().NoError(err)
	s.Equal("fab2", updated.Fabric)
	s.Equal("leaf-201", updated.Node1)

	var persisted models.NodeGroup
	s.Require().NoError(s.db.First(&persisted, created.Created).Error)
	s.Equal("leaf-202", persisted.Node2)
}

func (s *NodeGroupSuite) TestUpdateMissing() {
	_, err := s.service().Update(42, &CreateRequest{Fabric: "f", Node1: "a", Node2: "b"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *NodeGroupSuite) TestDelete() {
	created, err := s.service().Create(&CreateRequest{
		Fabric: "fab1",
		Node1:  "leaf-101",
		Node2:  "leaf-102",
	})
	s.Require().NoError(err)

	resp, err := s.service().Delete(created.Created)
	s.Require().NoError(err)
	s.Equal(created.Created, resp.Deleted)
	s.Zero(resp.TotalNodeGroups)
}

func (s *NodeGroupSuite) TestDeleteMissing() {
	_, err := s.service().Delete(42)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}
