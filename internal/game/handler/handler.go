// Package handler 注册全部入站事件。鉴权模型很简单：join 把玩家身份
// 绑到连接上，其余命令要求已绑定，否则静默忽略。
package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"CastleRealm/internal/game/alliance"
	"CastleRealm/internal/game/broadcast"
	"CastleRealm/internal/game/entity"
	"CastleRealm/internal/game/lifecycle"
	"CastleRealm/internal/game/store"
	"CastleRealm/internal/shared/session"
	"CastleRealm/internal/shared/transport"
	"CastleRealm/internal/shared/transport/ws"
	"CastleRealm/internal/shared/utils"
	"CastleRealm/modules/kit/errx"
	"CastleRealm/modules/kit/logx"
)

type GameHandler struct {
	store     *store.Store
	life      *lifecycle.Manager
	alliances *alliance.Registry
	sessions  session.Manager
	emit      lifecycle.Emitter
	log       logx.Logger
}

func New(s *store.Store, life *lifecycle.Manager, reg *alliance.Registry, sessions session.Manager, emit lifecycle.Emitter, log logx.Logger) *GameHandler {
	return &GameHandler{
		store:     s,
		life:      life,
		alliances: reg,
		sessions:  sessions,
		emit:      emit,
		log:       log,
	}
}

func (h *GameHandler) Register(r *ws.Router) {
	r.Handle("join", h.Join)
	r.Handle("updateResources", h.UpdateResources)
	r.Handle("upgradeBuilding", h.UpgradeBuilding)
	r.Handle("completeBuildingUpgrade", h.CompleteBuildingUpgrade)
	r.Handle("addTrainingQueue", h.AddTrainingQueue)
	r.Handle("completeTroopTraining", h.CompleteTroopTraining)
	r.Handle("createAlliance", h.CreateAlliance)
	r.Handle("joinAlliance", h.JoinAlliance)
	r.Handle("requestGameState", h.RequestGameState)
}

func ok(ctx context.Context) {
	transport.SetBizCode(ctx, transport.OK)
}

func ignored(ctx context.Context, reason string) {
	transport.SetBizCode(ctx, transport.Ignored)
	transport.SetErrorReason(ctx, reason)
}

// reject 把业务拒绝写进访问与业务日志。协议上命令不回错误事件，
// 拒绝原因只对服务端可见。
func (h *GameHandler) reject(ctx context.Context, req *ws.Request, err error) {
	reason := "REJECTED"
	var e *errx.Error
	if errors.As(err, &e) {
		reason = string(e.Code())
	}
	ignored(ctx, reason)
	logx.ReportBizWithLoggerContext(ctx, h.log, logx.NewBizLog("WS "+req.Event, reason, err.Error()))
}

// boundPlayer 取连接绑定的玩家身份，以会话管理器为准。join 之前的命令一律忽略。
func (h *GameHandler) boundPlayer(ctx context.Context, req *ws.Request) (string, bool) {
	id, bound := h.sessions.GetPlayerID(req.Conn)
	if !bound || id == "" {
		ignored(ctx, "NOT_JOINED")
		return "", false
	}
	return id, true
}

type joinPayload struct {
	Username string `json:"username"`
}

func (h *GameHandler) Join(ctx context.Context, req *ws.Request) {
	// 重复 join 复用已绑定身份，不造第二个玩家。
	if _, bound := h.sessions.GetPlayerID(req.Conn); bound {
		ignored(ctx, "ALREADY_JOINED")
		return
	}

	var payload joinPayload
	if err := ws.Bind(req.Payload, &payload); err != nil {
		h.log.WithContext(ctx).Warn("join payload decode failed", zap.Error(err))
	}

	playerID := utils.NextIDString()
	username := payload.Username
	if username == "" {
		suffix := playerID
		if len(suffix) > 6 {
			suffix = suffix[:6]
		}
		username = "Player_" + suffix
	}

	player := h.store.AddPlayer(playerID, username)
	req.Conn.SetProperty(ws.ConnKeyPlayerID, playerID)
	h.sessions.Bind(playerID, req.Conn)
	go h.watchDisconnect(playerID, req.Conn)

	req.Conn.Push(broadcast.EventJoined, map[string]any{
		"playerId":  playerID,
		"player":    player,
		"gameState": h.snapshot(),
	})
	h.emit.Broadcast(broadcast.EventPlayerJoined, player, playerID)

	h.log.WithContext(ctx).Info("player joined",
		zap.String("playerId", playerID),
		zap.String("username", username))
	ok(ctx)
}

// watchDisconnect 在连接断开后清理玩家并通告离场。
func (h *GameHandler) watchDisconnect(playerID string, conn ws.WSConn) {
	<-conn.Done()
	h.sessions.UnbindPlayer(playerID)
	h.store.RemovePlayer(playerID)
	h.emit.Broadcast(broadcast.EventPlayerLeft, map[string]any{"playerId": playerID})
	h.log.Info("player left", zap.String("playerId", playerID))
}

func (h *GameHandler) snapshot() map[string]any {
	return map[string]any{
		"players":       h.store.Players(),
		"monsters":      h.store.Monsters(),
		"resourcePlots": h.store.Plots(),
		"alliances":     h.store.Alliances(),
	}
}

type updateResourcesPayload struct {
	Resources entity.Resources `json:"resources"`
}

func (h *GameHandler) UpdateResources(ctx context.Context, req *ws.Request) {
	playerID, bound := h.boundPlayer(ctx, req)
	if !bound {
		return
	}
	var payload updateResourcesPayload
	if err := ws.Bind(req.Payload, &payload); err != nil {
		ignored(ctx, "BAD_PAYLOAD")
		return
	}
	if err := h.life.UpdateResources(playerID, payload.Resources); err != nil {
		h.reject(ctx, req, err)
		return
	}
	ok(ctx)
}

type upgradeBuildingPayload struct {
	BuildingID string `json:"buildingId"`
	// targetLevel 与 duration 只是客户端提示，实际数值按目录重算。
	TargetLevel int   `json:"targetLevel"`
	Duration    int64 `json:"duration"`
}

func (h *GameHandler) UpgradeBuilding(ctx context.Context, req *ws.Request) {
	playerID, bound := h.boundPlayer(ctx, req)
	if !bound {
		return
	}
	var payload upgradeBuildingPayload
	if err := ws.Bind(req.Payload, &payload); err != nil || payload.BuildingID == "" {
		ignored(ctx, "BAD_PAYLOAD")
		return
	}
	if err := h.life.StartUpgrade(playerID, payload.BuildingID); err != nil {
		h.reject(ctx, req, err)
		return
	}
	ok(ctx)
}

type completeUpgradePayload struct {
	BuildingID string `json:"buildingId"`
}

func (h *GameHandler) CompleteBuildingUpgrade(ctx context.Context, req *ws.Request) {
	playerID, bound := h.boundPlayer(ctx, req)
	if !bound {
		return
	}
	var payload completeUpgradePayload
	if err := ws.Bind(req.Payload, &payload); err != nil || payload.BuildingID == "" {
		ignored(ctx, "BAD_PAYLOAD")
		return
	}
	// 提前到达的提示在内部被判定为未到期，不产生变化。
	if err := h.life.CompleteUpgrade(playerID, payload.BuildingID); err != nil {
		h.reject(ctx, req, err)
		return
	}
	ok(ctx)
}

type trainingQueuePayload struct {
	Queue struct {
		TroopType  string `json:"troopType"`
		Tier       int    `json:"tier"`
		Count      int64  `json:"count"`
		BuildingID string `json:"buildingId"`
	} `json:"queue"`
}

func (h *GameHandler) AddTrainingQueue(ctx context.Context, req *ws.Request) {
	playerID, bound := h.boundPlayer(ctx, req)
	if !bound {
		return
	}
	var payload trainingQueuePayload
	if err := ws.Bind(req.Payload, &payload); err != nil || payload.Queue.BuildingID == "" {
		ignored(ctx, "BAD_PAYLOAD")
		return
	}
	q := payload.Queue
	if err := h.life.StartTraining(playerID, q.BuildingID, entity.TroopType(q.TroopType), q.Tier, q.Count); err != nil {
		h.reject(ctx, req, err)
		return
	}
	ok(ctx)
}

type completeTrainingPayload struct {
	QueueID string `json:"queueId"`
}

func (h *GameHandler) CompleteTroopTraining(ctx context.Context, req *ws.Request) {
	playerID, bound := h.boundPlayer(ctx, req)
	if !bound {
		return
	}
	var payload completeTrainingPayload
	if err := ws.Bind(req.Payload, &payload); err != nil || payload.QueueID == "" {
		ignored(ctx, "BAD_PAYLOAD")
		return
	}
	if err := h.life.CompleteTraining(playerID, payload.QueueID); err != nil {
		h.reject(ctx, req, err)
		return
	}
	ok(ctx)
}

type createAlliancePayload struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

func (h *GameHandler) CreateAlliance(ctx context.Context, req *ws.Request) {
	playerID, bound := h.boundPlayer(ctx, req)
	if !bound {
		return
	}
	var payload createAlliancePayload
	if err := ws.Bind(req.Payload, &payload); err != nil {
		ignored(ctx, "BAD_PAYLOAD")
		return
	}

	a := h.alliances.Create(payload.Name, payload.Tag, playerID)
	if a == nil {
		ignored(ctx, "CREATE_REJECTED")
		return
	}
	req.Conn.Push(broadcast.EventAllianceCreated, a)
	h.emit.Broadcast(broadcast.EventAllianceCreated, a, playerID)
	ok(ctx)
}

type joinAlliancePayload struct {
	AllianceID string `json:"allianceId"`
}

func (h *GameHandler) JoinAlliance(ctx context.Context, req *ws.Request) {
	playerID, bound := h.boundPlayer(ctx, req)
	if !bound {
		return
	}
	var payload joinAlliancePayload
	if err := ws.Bind(req.Payload, &payload); err != nil {
		ignored(ctx, "BAD_PAYLOAD")
		return
	}

	_, success := h.alliances.Join(playerID, payload.AllianceID)
	req.Conn.Push(broadcast.EventAllianceJoinResult, map[string]any{"success": success})
	if success {
		h.emit.Broadcast(broadcast.EventPlayerJoinedAlliance, map[string]any{
			"playerId":   playerID,
			"allianceId": payload.AllianceID,
		})
	}
	ok(ctx)
}

// RequestGameState 不要求已 join，连接建立后即可拉全量快照。
func (h *GameHandler) RequestGameState(ctx context.Context, req *ws.Request) {
	req.Conn.Push(broadcast.EventGameState, h.snapshot())
	ok(ctx)
}
