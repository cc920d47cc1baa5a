package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
	"github.com/kaamkaaj/kaamkaaj/internal/usecases"
	"github.com/rs/cors"
)

// KaamKaajServer is the REST API HTTP server for the KaamKaaj application.
type KaamKaajServer struct {
	Port                      int                         `config:"HTTP_PORT" default:"8080"`
	JWTSecret                 string                      `config:"JWT_SECRET" default:""`
	Logger                    *log.Logger                 `resolve:""`
	ChatTurnUseCase           usecases.ChatTurn           `resolve:""`
	CreateTaskUseCase         usecases.CreateTask         `resolve:""`
	ListTasksUseCase          usecases.ListTasks          `resolve:""`
	GetTaskUseCase            usecases.GetTask            `resolve:""`
	UpdateTaskUseCase         usecases.UpdateTask         `resolve:""`
	CompleteTaskUseCase       usecases.CompleteTask       `resolve:""`
	DeleteTaskUseCase         usecases.DeleteTask         `resolve:""`
	ListConversationsUseCase  usecases.ListConversations  `resolve:""`
	ListChatMessagesUseCase   usecases.ListChatMessages   `resolve:""`
	DeleteConversationUseCase usecases.DeleteConversation `resolve:""`
}

// Handler builds the full HTTP handler: routes, auth, telemetry and CORS.
func (api KaamKaajServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	authed := http.NewServeMux()
	authed.HandleFunc("POST /api/chat", api.handleChat)
	authed.HandleFunc("POST /api/tasks", api.handleCreateTask)
	authed.HandleFunc("GET /api/tasks", api.handleListTasks)
	authed.HandleFunc("GET /api/tasks/{taskID}", api.handleGetTask)
	authed.HandleFunc("PATCH /api/tasks/{taskID}", api.handleUpdateTask)
	authed.HandleFunc("POST /api/tasks/{taskID}/complete", api.handleCompleteTask)
	authed.HandleFunc("DELETE /api/tasks/{taskID}", api.handleDeleteTask)
	authed.HandleFunc("GET /api/conversations", api.handleListConversations)
	authed.HandleFunc("GET /api/conversations/{conversationID}/messages", api.handleListChatMessages)
	authed.HandleFunc("DELETE /api/conversations/{conversationID}", api.handleDeleteConversation)
	mux.Handle("/api/", authMiddleware(api.JWTSecret)(authed))

	h := telemetry.Middleware("kaamkaaj-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the KaamKaajServer.
func (api KaamKaajServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("KaamKaajServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("KaamKaajServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("KaamKaajServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the KaamKaajServer is ready by performing a health check.
func (api KaamKaajServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
