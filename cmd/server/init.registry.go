package main

import (
	"github.com/sirupsen/logrus"

	basesvc "review_hub/internal/api/base/service"
	reviewmodels "review_hub/internal/api/review/models"
	"review_hub/internal/global"
)

// initMongoRepositories đăng ký các collection vào registry và gán
// các repository MongoDB tương ứng. Chỉ gọi khi StorageMode là MongoDB.
func initMongoRepositories() {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)

	colNames := []string{
		reviewmodels.CollectionBusinesses,
		reviewmodels.CollectionCustomers,
		reviewmodels.CollectionPilotLeads,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	businessColl, _ := global.RegistryCollections.Get(reviewmodels.CollectionBusinesses)
	customerColl, _ := global.RegistryCollections.Get(reviewmodels.CollectionCustomers)
	pilotColl, _ := global.RegistryCollections.Get(reviewmodels.CollectionPilotLeads)

	global.BusinessRepo = basesvc.NewMongoRepository[reviewmodels.Business](businessColl)
	global.CustomerRepo = basesvc.NewMongoRepository[reviewmodels.Customer](customerColl)
	global.PilotLeadRepo = basesvc.NewMongoRepository[reviewmodels.PilotLead](pilotColl)

	logrus.Info("Initialized collection registry")
}
