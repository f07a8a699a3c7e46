package entity

// 领域实体定义。JSON tag 与线上协议字段一一对应。
// 时间戳统一为 Unix 毫秒，时长统一为毫秒。

type ResourceKind string

const (
	ResourceFood  ResourceKind = "food"
	ResourceWood  ResourceKind = "wood"
	ResourceStone ResourceKind = "stone"
	ResourceIron  ResourceKind = "iron"
	ResourceGold  ResourceKind = "gold"
)

// Resources 是五种资源计数器，约束：任何操作后每一项都 >= 0。
type Resources struct {
	Food  int64 `json:"food"`
	Wood  int64 `json:"wood"`
	Stone int64 `json:"stone"`
	Iron  int64 `json:"iron"`
	Gold  int64 `json:"gold"`
}

// Position 是世界地图坐标。
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector3 是城内建筑摆放坐标。
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type BuildingType string

const (
	BuildingCastle        BuildingType = "castle"
	BuildingBarracks      BuildingType = "barracks"
	BuildingStables       BuildingType = "stables"
	BuildingRange         BuildingType = "range"
	BuildingSiegeWorkshop BuildingType = "siegeWorkshop"
	BuildingDrillGrounds  BuildingType = "drillGrounds"
	BuildingWatchtower    BuildingType = "watchtower"
	BuildingBlacksmith    BuildingType = "blacksmith"
	BuildingCollege       BuildingType = "college"
	BuildingFortress      BuildingType = "fortress"
	BuildingMarket        BuildingType = "market"
	BuildingEmbassy       BuildingType = "embassy"
	BuildingDepot         BuildingType = "depot"
	BuildingFarm          BuildingType = "farm"
	BuildingLumberMill    BuildingType = "lumberMill"
	BuildingQuarry        BuildingType = "quarry"
	BuildingIronMine      BuildingType = "ironMine"
	BuildingMilitaryTent  BuildingType = "militaryTent"
	BuildingHospital      BuildingType = "hospital"
	BuildingHallOfWar     BuildingType = "hallOfWar"
)

// UpgradeState 是在途升级描述。一个建筑同一时刻至多一个。
type UpgradeState struct {
	TargetLevel int   `json:"targetLevel"`
	StartTime   int64 `json:"startTime"`
	Duration    int64 `json:"duration"`
}

type Building struct {
	ID        string        `json:"id"`
	Type      BuildingType  `json:"type"`
	Level     int           `json:"level"`
	Position  Vector3       `json:"position"`
	Upgrading *UpgradeState `json:"upgrading,omitempty"`
}

type TroopType string

const (
	TroopShieldSoldier  TroopType = "shieldSoldier"
	TroopPikeman        TroopType = "pikeman"
	TroopMeleeCavalry   TroopType = "meleeCavalry"
	TroopCavalryShooter TroopType = "cavalryShooter"
	TroopArcher         TroopType = "archer"
	TroopCrossbowman    TroopType = "crossbowman"
	TroopAssaultCart    TroopType = "assaultCart"
	TroopTrebuchet      TroopType = "trebuchet"
)

type TroopCategory string

const (
	CategoryInfantry TroopCategory = "infantry"
	CategoryCavalry  TroopCategory = "cavalry"
	CategoryArcher   TroopCategory = "archer"
	CategorySiege    TroopCategory = "siege"
)

// TroopUnit 按 (type, tier) 聚合；count 归零的记录会被移除。
type TroopUnit struct {
	Type     TroopType     `json:"type"`
	Tier     int           `json:"tier"`
	Category TroopCategory `json:"category"`
	Count    int64         `json:"count"`
}

type TrainingQueue struct {
	ID         string    `json:"id"`
	TroopType  TroopType `json:"troopType"`
	Tier       int       `json:"tier"`
	Count      int64     `json:"count"`
	StartTime  int64     `json:"startTime"`
	Duration   int64     `json:"duration"`
	BuildingID string    `json:"buildingId"`
}

type MissionKind string

const (
	MissionAttack    MissionKind = "attack"
	MissionGather    MissionKind = "gather"
	MissionScout     MissionKind = "scout"
	MissionReinforce MissionKind = "reinforce"
	MissionRally     MissionKind = "rally"
)

// March 是部队行军单位。此核心只维护数据形态，结算由外部协作者扩展。
type March struct {
	ID          string       `json:"id"`
	PlayerID    string       `json:"playerId"`
	Troops      []*TroopUnit `json:"troops"`
	Origin      Position     `json:"origin"`
	Destination Position     `json:"destination"`
	StartTime   int64        `json:"startTime"`
	ArrivalTime int64        `json:"arrivalTime"`
	MissionType MissionKind  `json:"missionType"`
	TargetID    string       `json:"targetId,omitempty"`
}

type MonsterType string

const (
	MonsterCentaur MonsterType = "centaur"
	MonsterGriffin MonsterType = "griffin"
	MonsterYeti    MonsterType = "yeti"
)

type Monster struct {
	ID        string      `json:"id"`
	Type      MonsterType `json:"type"`
	Level     int         `json:"level"`
	Position  Position    `json:"position"`
	Health    int64       `json:"health"`
	MaxHealth int64       `json:"maxHealth"`
	Rewards   Resources   `json:"rewards"`
}

type ResourcePlot struct {
	ID         string       `json:"id"`
	Type       ResourceKind `json:"type"`
	Level      int          `json:"level"`
	Position   Position     `json:"position"`
	Capacity   int64        `json:"capacity"`
	Remaining  int64        `json:"remaining"`
	OccupiedBy string       `json:"occupiedBy,omitempty"`
}

type Player struct {
	ID             string           `json:"id"`
	Username       string           `json:"username"`
	CastleLevel    int              `json:"castleLevel"`
	Position       Position         `json:"position"`
	Resources      Resources        `json:"resources"`
	Buildings      []*Building      `json:"buildings"`
	Troops         []*TroopUnit     `json:"troops"`
	TrainingQueues []*TrainingQueue `json:"trainingQueues"`
	Marches        []*March         `json:"marches"`
	AllianceID     string           `json:"allianceId,omitempty"`
	Power          int64            `json:"power"`
}

type AllianceFort struct {
	Position Position `json:"position"`
	Level    int      `json:"level"`
}

type AllianceTurret struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
	Level    int      `json:"level"`
}

type AllianceSuperMine struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Capacity  int64    `json:"capacity"`
	Remaining int64    `json:"remaining"`
}

// Alliance 共享建筑（要塞/炮塔/超级矿）目前只是数据槽位，没有建造流程。
type Alliance struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Tag       string             `json:"tag"`
	LeaderID  string             `json:"leaderId"`
	Members   []string           `json:"members"`
	Fort      *AllianceFort      `json:"fort,omitempty"`
	Turrets   []*AllianceTurret  `json:"turrets"`
	SuperMine *AllianceSuperMine `json:"superMine,omitempty"`
}
