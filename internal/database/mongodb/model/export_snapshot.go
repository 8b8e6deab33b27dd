package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExportSnapshot 使用者匯出時落地的資料快照，
// stores 只含該使用者權限範圍內的門市
type ExportSnapshot struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id"`
	Email      string              `json:"email" bson:"email"`
	PICCode    string              `json:"picCode" bson:"picCode"`
	Role       string              `json:"role" bson:"role"`
	StoreCount int                 `json:"storeCount" bson:"storeCount"`
	Stores     []SnapshotStore     `json:"stores" bson:"stores"`
	Note       string              `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt" bson:"updatedAt"`
	ExpiresAt  *primitive.DateTime `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
}

type SnapshotStore struct {
	StoreID              string `json:"storeId" bson:"storeId"`
	StoreName            string `json:"storeName" bson:"storeName"`
	BuyerID              string `json:"buyerId,omitempty" bson:"buyerId,omitempty"`
	CurrentPIC           string `json:"currentPic" bson:"currentPic"`
	FullAddress          string `json:"fullAddress,omitempty" bson:"fullAddress,omitempty"`
	LastOrderDate        string `json:"lastOrderDate,omitempty" bson:"lastOrderDate,omitempty"`
	ChurnStatusThisMonth string `json:"churnStatusThisMonth,omitempty" bson:"churnStatusThisMonth,omitempty"`
}

var ExportSnapshotIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_email_createdAt"),
	},
	{
		Keys:    bson.D{{Key: "picCode", Value: 1}},
		Options: options.Index().SetName("idx_picCode"),
	},
}
