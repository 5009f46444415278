package models

// NodeGroup pairs two nodes into a VPC domain.
type NodeGroup struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Fabric string `json:"fabric"`
	Node1  string `json:"node-1" gorm:"column:node_1"`
	Node2  string `json:"node-2" gorm:"column:node_2"`
}

type NodeGroups []*NodeGroup
