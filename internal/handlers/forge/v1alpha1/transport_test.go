package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities"
	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-character-forge/internal/handlers/forge/v1alpha1"
	dicemock "github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/wizard"
	wizardmock "github.com/KirkDiggler/rpg-character-forge/internal/orchestrators/wizard/mock"
	exportmock "github.com/KirkDiggler/rpg-character-forge/internal/services/export/mock"
)

func startForge(t *testing.T, ws wizard.Service) *v1alpha1.CharacterForgeServiceClient {
	t.Helper()
	ctrl := gomock.NewController(t)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		WizardService: ws,
		DiceService:   dicemock.NewMockService(ctrl),
		ExportService: exportmock.NewMockService(ctrl),
	})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterCharacterForgeServiceServer(srv, handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return v1alpha1.NewCharacterForgeServiceClient(conn)
}

func TestJSONRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := wizardmock.NewMockService(ctrl)
	client := startForge(t, ws)
	ctx := context.Background()

	character := dnd5e.DefaultCharacter()
	character.Name = "Mira"
	character.Race = dnd5e.RaceElf
	ws.EXPECT().
		UpdateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *wizard.UpdateCharacterInput) (*wizard.UpdateCharacterOutput, error) {
			require.NotNil(t, input.Update)
			require.NotNil(t, input.Update.Name)
			assert.Equal(t, "Mira", *input.Update.Name)
			assert.Nil(t, input.Update.Class)
			return &wizard.UpdateCharacterOutput{
				Session: &entities.WizardSession{ID: "sess_1", Step: entities.StepRace, Character: character},
			}, nil
		})

	resp, err := client.UpdateCharacter(ctx, &v1alpha1.UpdateCharacterRequest{
		SessionID: "sess_1",
		Update:    &dnd5e.CharacterUpdate{Name: dnd5e.Ptr("Mira")},
	})
	require.NoError(t, err)
	assert.Equal(t, "race", resp.Session.Step)
	assert.Equal(t, "Mira", resp.Session.Character.Name)
	assert.Equal(t, dnd5e.RaceElf, resp.Session.Character.Race)
}

func TestErrorDetailsSurviveTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := wizardmock.NewMockService(ctrl)
	client := startForge(t, ws)

	ws.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("session not found").WithMeta("session_id", "missing"))

	_, err := client.GetSession(context.Background(), &v1alpha1.GetSessionRequest{SessionID: "missing"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	converted := errors.FromGRPCError(err)
	assert.True(t, errors.IsNotFound(converted))
	assert.Equal(t, "missing", errors.GetMeta(converted)["session_id"])
}

func TestEmptyCollectionClearsOverTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := wizardmock.NewMockService(ctrl)
	client := startForge(t, ws)

	ws.EXPECT().
		UpdateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *wizard.UpdateCharacterInput) (*wizard.UpdateCharacterOutput, error) {
			require.NotNil(t, input.Update)
			assert.NotNil(t, input.Update.Equipment)
			assert.Empty(t, input.Update.Equipment)
			assert.Nil(t, input.Update.Spells)
			assert.False(t, input.Update.IsEmpty())
			return &wizard.UpdateCharacterOutput{
				Session: &entities.WizardSession{ID: "sess_1", Step: entities.StepRace, Character: dnd5e.DefaultCharacter()},
			}, nil
		})

	_, err := client.UpdateCharacter(context.Background(), &v1alpha1.UpdateCharacterRequest{
		SessionID: "sess_1",
		Update:    &dnd5e.CharacterUpdate{Equipment: []dnd5e.EquipmentItem{}},
	})
	require.NoError(t, err)
}
