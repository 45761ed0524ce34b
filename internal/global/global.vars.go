package global

import (
	"traxalon/config"
	"traxalon/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Tracking_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Tracking_CollectionName struct {
	TrackingLinks string // Tên collection cho tracking links (chứa mảng captures nhúng)
	Accounts      string // Tên collection cho tài khoản (credits, totalLinksGenerated)
}

// Các biến toàn cục
var Validate *validator.Validate                                                             // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                            // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                               // Cấu hình của server
var MongoDB_ColNames MongoDB_Tracking_CollectionName = *new(MongoDB_Tracking_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
