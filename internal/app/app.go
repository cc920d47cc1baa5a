package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/inbound/http"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/inbound/workers"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/outbound/config"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/outbound/log"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/outbound/openrouter"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/outbound/postgres"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/outbound/pubsub"
	"github.com/kaamkaaj/kaamkaaj/internal/adapters/outbound/time"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
	"github.com/kaamkaaj/kaamkaaj/internal/usecases"
)

// NewKaamKaajApp creates and returns a new instance of the KaamKaaj application.
func NewKaamKaajApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitTaskRepository{},
			&postgres.InitChatMessageRepository{},
			&postgres.InitConversationRepository{},
			&postgres.InitOutboxRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&openrouter.InitCompletionClient{},

			&usecases.InitTaskCreator{},
			&usecases.InitTaskUpdater{},
			&usecases.InitTaskDeleter{},
			&usecases.InitTaskResolver{},

			&usecases.InitChatTurn{},
			&usecases.InitCreateTask{},
			&usecases.InitListTasks{},
			&usecases.InitGetTask{},
			&usecases.InitUpdateTask{},
			&usecases.InitCompleteTask{},
			&usecases.InitDeleteTask{},
			&usecases.InitListConversations{},
			&usecases.InitListChatMessages{},
			&usecases.InitDeleteConversation{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.KaamKaajServer{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
