package broadcast

// 下行事件名。客户端按 event 字段分发。
const (
	EventJoined                   = "joined"
	EventPlayerJoined             = "playerJoined"
	EventPlayerLeft               = "playerLeft"
	EventGameState                = "gameState"
	EventResourcesUpdated         = "resourcesUpdated"
	EventBuildingUpgradeStarted   = "buildingUpgradeStarted"
	EventBuildingUpgradeCompleted = "buildingUpgradeCompleted"
	EventTrainingQueueAdded       = "trainingQueueAdded"
	EventTroopTrainingCompleted   = "troopTrainingCompleted"
	EventAllianceCreated          = "allianceCreated"
	EventAllianceJoinResult       = "allianceJoinResult"
	EventPlayerJoinedAlliance     = "playerJoinedAlliance"
)
