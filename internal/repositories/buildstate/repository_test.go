package buildstate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tft-notebook/internal/entities/tft"
	"github.com/KirkDiggler/tft-notebook/internal/errors"
	"github.com/KirkDiggler/tft-notebook/internal/repositories/buildstate"
	"github.com/KirkDiggler/tft-notebook/internal/testutils"
)

// backendSuite runs the same contract against every backend
type backendSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func() buildstate.Repository
	snap    *buildstate.Snapshot
}

func (s *backendSuite) SetupTest() {
	s.ctx = context.Background()
	s.snap = &buildstate.Snapshot{
		ID:      "snap_1",
		SavedAt: time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC),
		SetName: "Set8_Stage2",
		Champions: []tft.ChampionState{
			{
				Champion: tft.Champion{APIName: "TFT8_Ashe", Name: "Ashe"},
				Items: []tft.Item{
					{APIName: "TFT_Item_GuinsoosRageblade", Name: "Guinsoo's Rageblade", Composition: []string{"TFT_Item_RecurveBow", "TFT_Item_NeedlesslyLargeRod"}},
				},
			},
			{
				Champion: tft.Champion{APIName: "TFT8_Vi", Name: "Vi"},
				Items:    []tft.Item{},
			},
		},
	}
}

func (s *backendSuite) TestLoadMissing() {
	repo := s.newRepo()

	out, err := repo.Load(s.ctx, buildstate.LoadInput{Profile: buildstate.DefaultProfile})

	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *backendSuite) TestSaveThenLoad() {
	repo := s.newRepo()

	saved, err := repo.Save(s.ctx, buildstate.SaveInput{Profile: buildstate.DefaultProfile, Snapshot: s.snap})
	s.Require().NoError(err)
	s.NotEmpty(saved.Location)

	out, err := repo.Load(s.ctx, buildstate.LoadInput{Profile: buildstate.DefaultProfile})
	s.Require().NoError(err)
	s.Equal(s.snap.ID, out.Snapshot.ID)
	s.Equal(s.snap.SetName, out.Snapshot.SetName)
	s.True(s.snap.SavedAt.Equal(out.Snapshot.SavedAt))
	s.Require().Len(out.Snapshot.Champions, 2)
	s.Equal("Ashe", out.Snapshot.Champions[0].Champion.Name)
	s.Equal("Guinsoo's Rageblade", out.Snapshot.Champions[0].Items[0].Name)
	s.Empty(out.Snapshot.Champions[1].Items)
}

func (s *backendSuite) TestSaveReplacesPrevious() {
	repo := s.newRepo()

	_, err := repo.Save(s.ctx, buildstate.SaveInput{Profile: buildstate.DefaultProfile, Snapshot: s.snap})
	s.Require().NoError(err)

	next := &buildstate.Snapshot{ID: "snap_2", SavedAt: s.snap.SavedAt.Add(time.Minute)}
	_, err = repo.Save(s.ctx, buildstate.SaveInput{Profile: buildstate.DefaultProfile, Snapshot: next})
	s.Require().NoError(err)

	out, err := repo.Load(s.ctx, buildstate.LoadInput{Profile: buildstate.DefaultProfile})
	s.Require().NoError(err)
	s.Equal("snap_2", out.Snapshot.ID)
	s.Empty(out.Snapshot.Champions)
}

func (s *backendSuite) TestProfilesAreIndependent() {
	repo := s.newRepo()

	_, err := repo.Save(s.ctx, buildstate.SaveInput{Profile: "ranked", Snapshot: s.snap})
	s.Require().NoError(err)

	_, err = repo.Load(s.ctx, buildstate.LoadInput{Profile: buildstate.DefaultProfile})
	s.True(errors.IsNotFound(err))

	out, err := repo.Load(s.ctx, buildstate.LoadInput{Profile: "ranked"})
	s.Require().NoError(err)
	s.Equal("snap_1", out.Snapshot.ID)
}

func (s *backendSuite) TestListProfiles() {
	repo := s.newRepo()

	empty, err := repo.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Empty(empty.Profiles)

	for _, profile := range []string{"ranked", buildstate.DefaultProfile} {
		_, err := repo.Save(s.ctx, buildstate.SaveInput{Profile: profile, Snapshot: s.snap})
		s.Require().NoError(err)
	}

	out, err := repo.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out.Profiles, 2)
	s.Equal(buildstate.DefaultProfile, out.Profiles[0].Profile)
	s.Equal("ranked", out.Profiles[1].Profile)
	s.Equal(2, out.Profiles[1].Champions)
	s.False(out.Profiles[1].Corrupt)
	s.True(s.snap.SavedAt.Equal(out.Profiles[1].SavedAt))
}

func (s *backendSuite) TestValidation() {
	repo := s.newRepo()

	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "load without profile",
			call: func() error {
				_, err := repo.Load(s.ctx, buildstate.LoadInput{})
				return err
			},
		},
		{
			name: "save without profile",
			call: func() error {
				_, err := repo.Save(s.ctx, buildstate.SaveInput{Snapshot: s.snap})
				return err
			},
		},
		{
			name: "save without snapshot",
			call: func() error {
				_, err := repo.Save(s.ctx, buildstate.SaveInput{Profile: buildstate.DefaultProfile})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(errors.IsInvalidArgument(tc.call()))
		})
	}
}

func TestFileBackend(t *testing.T) {
	suite.Run(t, &backendSuite{newRepo: func() buildstate.Repository {
		repo, err := buildstate.NewFile(&buildstate.FileConfig{Dir: t.TempDir()})
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func TestRedisBackend(t *testing.T) {
	suite.Run(t, &backendSuite{newRepo: func() buildstate.Repository {
		client, _ := testutils.CreateTestRedisClient(t)
		repo, err := buildstate.NewRedis(&buildstate.RedisConfig{Client: client})
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func TestSQLiteBackend(t *testing.T) {
	suite.Run(t, &backendSuite{newRepo: func() buildstate.Repository {
		repo, err := buildstate.NewSQLite(&buildstate.SQLiteConfig{Path: filepath.Join(t.TempDir(), "notebook.db")})
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = repo.Close() })
		return repo
	}})
}

type FileRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	dir  string
	repo buildstate.Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()

	repo, err := buildstate.NewFile(&buildstate.FileConfig{Dir: s.dir})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileRepositoryTestSuite) TestDefaultProfileUsesStateFile() {
	out, err := s.repo.Save(s.ctx, buildstate.SaveInput{
		Profile:  buildstate.DefaultProfile,
		Snapshot: &buildstate.Snapshot{ID: "a"},
	})
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, buildstate.StateFileName), out.Location)
	s.FileExists(out.Location)
}

func (s *FileRepositoryTestSuite) TestLoadsBareChampionArray() {
	doc := `[{"champion":{"apiName":"TFT8_Ashe","name":"Ashe","cost":1,"traits":["Recon"]},"items":[{"apiName":"TFT_Item_Deathblade","name":"Deathblade"}]}]`
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, buildstate.StateFileName), []byte(doc), 0o600))

	out, err := s.repo.Load(s.ctx, buildstate.LoadInput{Profile: buildstate.DefaultProfile})
	s.Require().NoError(err)
	s.Require().Len(out.Snapshot.Champions, 1)
	s.Equal("Ashe", out.Snapshot.Champions[0].Champion.Name)
	s.Equal("Deathblade", out.Snapshot.Champions[0].Items[0].Name)
}

func (s *FileRepositoryTestSuite) TestLoadsLegacyChampKey() {
	doc, err := os.ReadFile(filepath.Join("testdata", "legacy_champ_info.json"))
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, buildstate.StateFileName), doc, 0o600))

	out, err := s.repo.Load(s.ctx, buildstate.LoadInput{Profile: buildstate.DefaultProfile})
	s.Require().NoError(err)
	s.Require().Len(out.Snapshot.Champions, 2)

	ahri := out.Snapshot.Champions[0]
	s.Equal("Ahri", ahri.Champion.Name)
	s.Equal("TFT8_Ahri", ahri.Champion.APIName)
	s.Equal(4, ahri.Champion.Cost)
	s.Equal([]string{"Star Guardian", "Spellslinger"}, ahri.Champion.Traits)
	s.Require().Len(ahri.Items, 1)
	s.Equal("Infinity Edge", ahri.Items[0].Name)
	s.Equal([]string{"TFT_Item_BFSword", "TFT_Item_SparringGloves"}, ahri.Items[0].Composition)

	vi := out.Snapshot.Champions[1]
	s.Equal("Vi", vi.Champion.Name)
	s.Empty(vi.Items)

	profiles, err := s.repo.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(profiles.Profiles, 1)
	s.False(profiles.Profiles[0].Corrupt)
	s.Equal(2, profiles.Profiles[0].Champions)
}

func (s *FileRepositoryTestSuite) TestCorruptFile() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, buildstate.StateFileName), []byte("{not json"), 0o600))

	_, err := s.repo.Load(s.ctx, buildstate.LoadInput{Profile: buildstate.DefaultProfile})
	s.Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestListProfilesFlagsCorruptFiles() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "champ_info.broken.json"), []byte("{not json"), 0o600))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "notes.json"), []byte("{}"), 0o600))

	out, err := s.repo.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(out.Profiles, 1)
	s.Equal("broken", out.Profiles[0].Profile)
	s.True(out.Profiles[0].Corrupt)
}

func (s *FileRepositoryTestSuite) TestSaveFailure() {
	blocker := filepath.Join(s.dir, "blocker")
	s.Require().NoError(os.WriteFile(blocker, []byte("x"), 0o600))

	repo, err := buildstate.NewFile(&buildstate.FileConfig{Dir: filepath.Join(blocker, "nested")})
	s.Require().NoError(err)

	_, err = repo.Save(s.ctx, buildstate.SaveInput{
		Profile:  buildstate.DefaultProfile,
		Snapshot: &buildstate.Snapshot{},
	})
	s.True(errors.IsPersistence(err))
}

func (s *FileRepositoryTestSuite) TestConfigValidation() {
	_, err := buildstate.NewFile(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = buildstate.NewFile(&buildstate.FileConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *buildstate.SQLiteRepository
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := buildstate.NewSQLite(&buildstate.SQLiteConfig{Path: filepath.Join(s.T().TempDir(), "notebook.db")})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func (s *SQLiteRepositoryTestSuite) TestHistoryNewestFirst() {
	base := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		_, err := s.repo.Save(s.ctx, buildstate.SaveInput{
			Profile:  buildstate.DefaultProfile,
			Snapshot: &buildstate.Snapshot{ID: id, SavedAt: base.Add(time.Duration(i) * time.Minute)},
		})
		s.Require().NoError(err)
	}

	history, err := s.repo.History(s.ctx, buildstate.DefaultProfile, 2)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("c", history[0].ID)
	s.Equal("b", history[1].ID)
	s.True(base.Add(2 * time.Minute).Equal(history[0].SavedAt))
}

func (s *SQLiteRepositoryTestSuite) TestHistoryRequiresProfile() {
	_, err := s.repo.History(s.ctx, "", 0)
	s.True(errors.IsInvalidArgument(err))
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
