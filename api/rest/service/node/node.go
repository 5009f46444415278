package node

import (
	"context"

	"github.com/stagehand-cloud/stagehand/internal/models"
	"github.com/stagehand-cloud/stagehand/pkg/db"
	"gorm.io/gorm"
)

// Service exposes inventory node queries and mutations.
type Service interface {
	WithDatabase(*gorm.DB) Service
	List() (*ListResponse, error)
	Create(*CreateRequest) (*CreateResponse, error)
	AssignVpc(id uint, vpcID *uint) (*models.Node, error)
	Delete(uint) (*DeleteResponse, error)
}

type service struct {
	ctx context.Context
	db  *gorm.DB
}

// New creates a node Service bound to the request context.
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

func (s *service) all() (models.Nodes, error) {
	nodes := make(models.Nodes, 0)
	q := s.connection().WithContext(s.ctx)
	return nodes, q.Order("id").Find(&nodes).Error
}

// ListResponse enumerates every node with the inventory total.
type ListResponse struct {
	Nodes      models.Nodes `json:"nodes"`
	TotalNodes int          `json:"total_nodes"`
}

func (s *service) List() (*ListResponse, error) {
	nodes, err := s.all()
	if err != nil {
		return nil, err
	}

	return &ListResponse{Nodes: nodes, TotalNodes: len(nodes)}, nil
}

// CreateRequest registers a node in a fabric. VpcID must reference an
// existing node group when present.
type CreateRequest struct {
	Fabric   string `json:"fabric" validate:"required"`
	Hostname string `json:"hostname" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=access-leaf border-leaf spine"`
	Type     string `json:"type" validate:"omitempty,oneof=standalone vpc"`
	VpcID    *uint  `json:"vpc-id"`
}

// CreateResponse echoes the created id alongside the refreshed
// inventory.
type CreateResponse struct {
	Created    uint         `json:"created"`
	Nodes      models.Nodes `json:"nodes"`
	TotalNodes int          `json:"total_nodes"`
}

func (s *service) Create(req *CreateRequest) (*CreateResponse, error) {
	node := &models.Node{
		Fabric:   req.Fabric,
		Hostname: req.Hostname,
		Role:     models.NodeRole(req.Role),
		Type:     models.NodeType(req.Type),
		VpcID:    req.VpcID,
	}

	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if req.VpcID != nil {
			if err := tx.First(&models.NodeGroup{}, *req.VpcID).Error; err != nil {
				return err
			}
		}
		return tx.Create(node).Error
	})
	if err != nil {
		return nil, err
	}

	nodes, err := s.all()
	if err != nil {
		return nil, err
	}

	return &CreateResponse{
		Created:    node.ID,
		Nodes:      nodes,
		TotalNodes: len(nodes),
	}, nil
}

// AssignVpc replaces the node's group membership. A nil vpcID detaches
// the node.
func (s *service) AssignVpc(id uint, vpcID *uint) (*models.Node, error) {
	var node models.Node

	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&node, id).Error; err != nil {
			return err
		}
		if vpcID != nil {
			if err := tx.First(&models.NodeGroup{}, *vpcID).Error; err != nil {
				return err
			}
		}

		node.VpcID = vpcID

		return tx.Save(&node).Error
	})
	if err != nil {
		return nil, err
	}

	return &node, nil
}

// DeleteResponse echoes the deleted id alongside the refreshed
// inventory.
type DeleteResponse struct {
	Deleted    uint         `json:"deleted"`
	Nodes      models.Nodes `json:"nodes"`
	TotalNodes int          `json:"total_nodes"`
}

func (s *service) Delete(id uint) (*DeleteResponse, error) {
	err := s.connection().WithContext(s.ctx).Transaction(func(tx *gorm.DB) error {
		var node models.Node
		if err := tx.First(&node, id).Error; err != nil {
			return err
		}
		return tx.Delete(&node).Error
	})
	if err != nil {
		return nil, err
	}

	nodes, err := s.all()
	if err != nil {
		return nil, err
	}

	return &DeleteResponse{Deleted: id, Nodes: nodes, TotalNodes: len(nodes)}, nil
}
