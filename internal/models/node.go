package models

// NodeRole enumerates the fabric roles a node can take.
type NodeRole string

const (
	NodeRoleAccessLeaf NodeRole = "access-leaf"
	NodeRoleBorderLeaf NodeRole = "border-leaf"
	NodeRoleSpine      NodeRole = "spine"
)

// NodeType enumerates node deployment types.
type NodeType string

const (
	NodeTypeStandalone NodeType = "standalone"
	NodeTypeVPC        NodeType = "vpc"
)

// Node is a switch in a fabric. VpcID, when set, references the
// NodeGroup the node pairs into. The vpc-id key is omitted from JSON
// for standalone nodes.
type Node struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Fabric   string     `json:"fabric"`
	Hostname string     `json:"hostname"`
	Role     NodeRole   `json:"role" gorm:"type:text;not null"`
	Type     NodeType   `json:"type,omitempty" gorm:"type:text"`
	VpcID    *uint      `json:"vpc-id,omitempty" gorm:"column:vpc_id"`
	Vpc      *NodeGroup `json:"-" gorm:"foreignKey:VpcID"`
}

type Nodes []*Node
