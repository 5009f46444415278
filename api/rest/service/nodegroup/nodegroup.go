package nodegroup

import (
	"context"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// Service exposes node group queries and mutations.
type Service interface {
	WithDatabase(*gorm.DB) Service
	List() (*ListResponse, error)
	Create(*CreateRequest) (*CreateResponse, error)
	Update(uint, *CreateRequest) (*models.NodeGroup, error)
	Delete(uint) (*DeleteResponse, error)
}

type service struct {
	ctx context.Context
	db  *gorm.DB
}

// New creates a node group Service bound to the request context.
func New(ctx context.Context) Service {
	return &service{ctx: ctx}
}

func (s *service) WithDatabase(conn *gorm.DB) Service {
	if conn == nil {
		return s
	}
	s.db = conn
	return s
}

func (s *service) connection() *gorm.DB {
	if s.db == nil {
		s.db = db.Connection()
	}
	return s.db
}

func (s *service) all() (models.NodeGroups, error) {
	groups := make(models.NodeGroups, 0)
	q := s.connection().WithContext(s.ctx)
	return groups, q.Order("id").Find(&groups).Error
}

// ListResponse enumerates every node group with the inventory total.
type ListResponse struct {
	NodeGroups      models.NodeGroups `json:"nodegroups"`
	TotalNodeGroups int               `json:"total_nodegroups"`
}

func (s *service) List() (*ListResponse, error) {
	groups, err := s.all()
	if err != nil {
		return nil, err
	}

	return &ListResponse{NodeGroups: groups, TotalNodeGroups: len(groups)}, nil
}

// CreateRequest pairs two nodes into a group. Updates replace every
// field rather than merging.
type CreateRequest struct {
	Fabric string `json:"fabric" validate:"required"`
	Node1  string `json:"node-1" validate:"required"`
	Node2  string `json:"node-2" validate:"required"`
}

// CreateResponse echoes the created id alongside the refreshed list.
type CreateResponse struct {
	Created         uint              `json:"created"`
	NodeGroups      models.NodeGroups `json:"nodegroups"`
	TotalNodeGroups int               `json:"total_nodegroups"`
}

func (s *service) Create(req *CreateRequest) (*CreateResponse, error) {
	group := &models.NodeGroup{
		Fabric: req.Fabric,
		Node1:  req.Node1,
		Node2:  req.Node2,
	}

	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(group).Error
	})
	if err != nil {
		return nil, err
	}

	groups, err := s.all()
	if err != nil {
		return nil, err
	}

	return &CreateResponse{
		Created:         group.ID,
		NodeGroups:      groups,
		TotalNodeGroups: len(groups),
	}, nil
}

func (s *service) Update(id uint, req *CreateRequest) (*models.NodeGroup, error) {
	var group models.NodeGroup

	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&group, id).Error; err != nil {
			return err
		}

		group.Fabric = req.Fabric
		group.Node1 = req.Node1
		group.Node2 = req.Node2

		return tx.Save(&group).Error
	})
	if err != nil {
		return nil, err
	}

	return &group, nil
}

// DeleteResponse echoes the deleted id alongside the refreshed list.
type DeleteResponse struct {
	Deleted         uint              `json:"deleted"`
	NodeGroups      models.NodeGroups `json:"nodegroups"`
	TotalNodeGroups int               `json:"total_nodegroups"`
}

func (s *service) Delete(id uint) (*DeleteResponse, error) {
	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		var group models.NodeGroup
		if err := tx.First(&group, id).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
	if err != nil {
		return nil, err
	}

	groups, err := s.all()
	if err != nil {
		return nil, err
	}

	return &DeleteResponse{
		Deleted:         id,
		NodeGroups:      groups,
		TotalNodeGroups: len(groups),
	}, nil
}
