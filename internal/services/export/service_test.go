package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-character-forge/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
	"github.com/KirkDiggler/rpg-character-forge/internal/services/export"
)

type ServiceTestSuite struct {
	suite.Suite
	service export.Service
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	var err error
	s.service, err = export.NewService(&export.Config{
		Now: func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TestRenderCharacterSheet() {
	c := dnd5e.DefaultCharacter()
	c.Name = "Elara  Moonwhisper"
	c.Features = []dnd5e.Feature{{Name: "Darkvision"}, {Name: "Fey Ancestry"}}
	c.Backstory = "Raised among the silver woods, Elara learned the old songs."

	out, err := s.service.RenderCharacterSheet(s.ctx, &export.RenderCharacterSheetInput{Character: c})
	s.Require().NoError(err)

	s.Equal("Elara_Moonwhisper_character_sheet.pdf", out.Filename)
	s.Equal(export.ContentType, out.ContentType)
	s.True(bytes.HasPrefix(out.Content, []byte("%PDF-")))
	s.True(bytes.Contains(out.Content, []byte("%%EOF")))
}

func (s *ServiceTestSuite) TestRenderEmptyCharacter() {
	out, err := s.service.RenderCharacterSheet(s.ctx, &export.RenderCharacterSheetInput{
		Character: &dnd5e.Character{},
	})
	s.Require().NoError(err)
	s.Equal("Unnamed_Character_character_sheet.pdf", out.Filename)
	s.NotEmpty(out.Content)
}

func (s *ServiceTestSuite) TestRenderRequiresCharacter() {
	_, err := s.service.RenderCharacterSheet(s.ctx, &export.RenderCharacterSheetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestFilename() {
	s.Equal("Bob_character_sheet.pdf", export.Filename("Bob"))
	s.Equal("Sir_Reginald_the_Bold_character_sheet.pdf", export.Filename(" Sir Reginald\tthe   Bold "))
	s.Equal("Unnamed_Character_character_sheet.pdf", export.Filename("   "))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
