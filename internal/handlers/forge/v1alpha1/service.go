package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "forge.v1alpha1.CharacterForgeService"

// Method names
const (
	MethodStartSession         = "StartSession"
	MethodGetSession           = "GetSession"
	MethodUpdateCharacter      = "UpdateCharacter"
	MethodNavigate             = "Navigate"
	MethodStartOver            = "StartOver"
	MethodSetAllocationMethod  = "SetAllocationMethod"
	MethodSetAbilityScore      = "SetAbilityScore"
	MethodRollAbilityScores    = "RollAbilityScores"
	MethodGenerateCharacter    = "GenerateCharacter"
	MethodGenerateBackstory    = "GenerateBackstory"
	MethodGetReference         = "GetReference"
	MethodRollDice             = "RollDice"
	MethodGetDiceHistory       = "GetDiceHistory"
	MethodClearDiceHistory     = "ClearDiceHistory"
	MethodExportCharacterSheet = "ExportCharacterSheet"
	MethodStatus               = "Status"
)

// FullMethod returns the path used on the wire for a method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CharacterForgeServiceServer is the server API for the forge service.
type CharacterForgeServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error)
	UpdateCharacter(context.Context, *UpdateCharacterRequest) (*SessionResponse, error)
	Navigate(context.Context, *NavigateRequest) (*NavigateResponse, error)
	StartOver(context.Context, *StartOverRequest) (*SessionResponse, error)
	SetAllocationMethod(context.Context, *SetAllocationMethodRequest) (*SessionResponse, error)
	SetAbilityScore(context.Context, *SetAbilityScoreRequest) (*ApplyResponse, error)
	RollAbilityScores(context.Context, *RollAbilityScoresRequest) (*ApplyResponse, error)
	GenerateCharacter(context.Context, *GenerateCharacterRequest) (*GenerateCharacterResponse, error)
	GenerateBackstory(context.Context, *GenerateBackstoryRequest) (*GenerateBackstoryResponse, error)
	GetReference(context.Context, *GetReferenceRequest) (*GetReferenceResponse, error)
	RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error)
	GetDiceHistory(context.Context, *DiceHistoryRequest) (*GetDiceHistoryResponse, error)
	ClearDiceHistory(context.Context, *DiceHistoryRequest) (*ClearDiceHistoryResponse, error)
	ExportCharacterSheet(context.Context, *ExportCharacterSheetRequest) (*ExportCharacterSheetResponse, error)
	Status(context.Context, *StatusRequest) (*StatusResponse, error)
}

// RegisterCharacterForgeServiceServer registers srv on s.
func RegisterCharacterForgeServiceServer(s grpc.ServiceRegistrar, srv CharacterForgeServiceServer) {
	s.RegisterService(&CharacterForgeServiceDesc, srv)
}

// CharacterForgeServiceDesc describes the forge service to grpc.
var CharacterForgeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CharacterForgeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodStartSession, CharacterForgeServiceServer.StartSession),
		unary(MethodGetSession, CharacterForgeServiceServer.GetSession),
		unary(MethodUpdateCharacter, CharacterForgeServiceServer.UpdateCharacter),
		unary(MethodNavigate, CharacterForgeServiceServer.Navigate),
		unary(MethodStartOver, CharacterForgeServiceServer.StartOver),
		unary(MethodSetAllocationMethod, CharacterForgeServiceServer.SetAllocationMethod),
		unary(MethodSetAbilityScore, CharacterForgeServiceServer.SetAbilityScore),
		unary(MethodRollAbilityScores, CharacterForgeServiceServer.RollAbilityScores),
		unary(MethodGenerateCharacter, CharacterForgeServiceServer.GenerateCharacter),
		unary(MethodGenerateBackstory, CharacterForgeServiceServer.GenerateBackstory),
		unary(MethodGetReference, CharacterForgeServiceServer.GetReference),
		unary(MethodRollDice, CharacterForgeServiceServer.RollDice),
		unary(MethodGetDiceHistory, CharacterForgeServiceServer.GetDiceHistory),
		unary(MethodClearDiceHistory, CharacterForgeServiceServer.ClearDiceHistory),
		unary(MethodExportCharacterSheet, CharacterForgeServiceServer.ExportCharacterSheet),
		unary(MethodStatus, CharacterForgeServiceServer.Status),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "forge/v1alpha1/character_forge.json",
}

func unary[Req, Resp any](
	method string,
	call func(CharacterForgeServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(CharacterForgeServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			})
		},
	}
}

// CharacterForgeServiceClient calls the forge service over the JSON codec.
type CharacterForgeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterForgeServiceClient wraps a connection.
func NewCharacterForgeServiceClient(cc grpc.ClientConnInterface) *CharacterForgeServiceClient {
	return &CharacterForgeServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CharacterForgeServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, MethodStartSession, in, opts...)
}

func (c *CharacterForgeServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, MethodGetSession, in, opts...)
}

func (c *CharacterForgeServiceClient) UpdateCharacter(ctx context.Context, in *UpdateCharacterRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, MethodUpdateCharacter, in, opts...)
}

func (c *CharacterForgeServiceClient) Navigate(ctx context.Context, in *NavigateRequest, opts ...grpc.CallOption) (*NavigateResponse, error) {
	return invoke[NavigateResponse](ctx, c.cc, MethodNavigate, in, opts...)
}

func (c *CharacterForgeServiceClient) StartOver(ctx context.Context, in *StartOverRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, MethodStartOver, in, opts...)
}

func (c *CharacterForgeServiceClient) SetAllocationMethod(ctx context.Context, in *SetAllocationMethodRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, MethodSetAllocationMethod, in, opts...)
}

func (c *CharacterForgeServiceClient) SetAbilityScore(ctx context.Context, in *SetAbilityScoreRequest, opts ...grpc.CallOption) (*ApplyResponse, error) {
	return invoke[ApplyResponse](ctx, c.cc, MethodSetAbilityScore, in, opts...)
}

func (c *CharacterForgeServiceClient) RollAbilityScores(ctx context.Context, in *RollAbilityScoresRequest, opts ...grpc.CallOption) (*ApplyResponse, error) {
	return invoke[ApplyResponse](ctx, c.cc, MethodRollAbilityScores, in, opts...)
}

func (c *CharacterForgeServiceClient) GenerateCharacter(ctx context.Context, in *GenerateCharacterRequest, opts ...grpc.CallOption) (*GenerateCharacterResponse, error) {
	return invoke[GenerateCharacterResponse](ctx, c.cc, MethodGenerateCharacter, in, opts...)
}

func (c *CharacterForgeServiceClient) GenerateBackstory(ctx context.Context, in *GenerateBackstoryRequest, opts ...grpc.CallOption) (*GenerateBackstoryResponse, error) {
	return invoke[GenerateBackstoryResponse](ctx, c.cc, MethodGenerateBackstory, in, opts...)
}

func (c *CharacterForgeServiceClient) GetReference(ctx context.Context, in *GetReferenceRequest, opts ...grpc.CallOption) (*GetReferenceResponse, error) {
	return invoke[GetReferenceResponse](ctx, c.cc, MethodGetReference, in, opts...)
}

func (c *CharacterForgeServiceClient) RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error) {
	return invoke[RollDiceResponse](ctx, c.cc, MethodRollDice, in, opts...)
}

func (c *CharacterForgeServiceClient) GetDiceHistory(ctx context.Context, in *DiceHistoryRequest, opts ...grpc.CallOption) (*GetDiceHistoryResponse, error) {
	return invoke[GetDiceHistoryResponse](ctx, c.cc, MethodGetDiceHistory, in, opts...)
}

func (c *CharacterForgeServiceClient) ClearDiceHistory(ctx context.Context, in *DiceHistoryRequest, opts ...grpc.CallOption) (*ClearDiceHistoryResponse, error) {
	return invoke[ClearDiceHistoryResponse](ctx, c.cc, MethodClearDiceHistory, in, opts...)
}

func (c *CharacterForgeServiceClient) ExportCharacterSheet(ctx context.Context, in *ExportCharacterSheetRequest, opts ...grpc.CallOption) (*ExportCharacterSheetResponse, error) {
	return invoke[ExportCharacterSheetResponse](ctx, c.cc, MethodExportCharacterSheet, in, opts...)
}

func (c *CharacterForgeServiceClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, MethodStatus, in, opts...)
}
