package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	api "github.com/rostermix/rostermix/internal/adapters/http/api"
	service "github.com/rostermix/rostermix/internal/app"
	"github.com/rostermix/rostermix/internal/domain/model"
	"github.com/rostermix/rostermix/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func newTestServer() (*httptest.Server, *service.Service) {
	svc := service.New(service.WithSeed(1))
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return httptest.NewServer(mux), svc
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, buf.Bytes()
}

func addPlayer(t *testing.T, base, name string) model.Player {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, base+"/players", map[string]string{"name": name})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add player: status %d: %s", resp.StatusCode, body)
	}
	var player model.Player
	if err := json.Unmarshal(body, &player); err != nil {
		t.Fatalf("decode player: %v", err)
	}
	return player
}

func TestHealthAndStats(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv, _ := newTestServer()
		defer srv.Close()

		Convey("When probing /healthz", func() {
			resp, body := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil)

			Convey("Then it reports ok", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(string(body), ShouldContainSubstring, `"status":"ok"`)
			})
		})

		Convey("When scraping /metrics", func() {
			resp, body := doJSON(t, http.MethodGet, srv.URL+"/metrics", nil)

			Convey("Then Prometheus exposition comes back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(string(body), ShouldContainSubstring, "rostermix_")
			})
		})

		Convey("When reading /stats", func() {
			resp, body := doJSON(t, http.MethodGet, srv.URL+"/stats", nil)

			Convey("Then the counters are present", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var stats map[string]any
				So(json.Unmarshal(body, &stats), ShouldBeNil)
				So(stats, ShouldContainKey, "players")
				So(stats, ShouldContainKey, "teams")
			})
		})
	})
}

func TestPlayersEndpoints(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv, _ := newTestServer()
		defer srv.Close()

		Convey("When adding and listing players", func() {
			addPlayer(t, srv.URL, "Ada")
			addPlayer(t, srv.URL, "Bo")

			resp, body := doJSON(t, http.MethodGet, srv.URL+"/players", nil)

			Convey("Then both show up", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var players []model.Player
				So(json.Unmarshal(body, &players), ShouldBeNil)
				So(players, ShouldHaveLength, 2)
			})
		})

		Convey("When adding a player with a blank name", func() {
			resp, _ := doJSON(t, http.MethodPost, srv.URL+"/players", map[string]string{"name": "  "})

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When patching a player", func() {
			player := addPlayer(t, srv.URL, "Ada")

			resp, body := doJSON(t, http.MethodPatch, srv.URL+"/players/"+player.ID,
				map[string]any{"skillLevel": "expert", "locked": true})

			Convey("Then the updated record comes back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var updated model.Player
				So(json.Unmarshal(body, &updated), ShouldBeNil)
				So(updated.SkillLevel, ShouldEqual, "expert")
				So(updated.Locked, ShouldBeTrue)
			})
		})

		Convey("When patching an unknown player", func() {
			resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/players/ghost", map[string]any{"locked": true})

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When deleting a player", func() {
			player := addPlayer(t, srv.URL, "Ada")

			resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/players/"+player.ID, nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			listResp, body := doJSON(t, http.MethodGet, srv.URL+"/players", nil)
			So(listResp.StatusCode, ShouldEqual, http.StatusOK)
			var players []model.Player
			So(json.Unmarshal(body, &players), ShouldBeNil)
			So(players, ShouldBeEmpty)
		})

		Convey("When moving a player", func() {
			for i := 0; i < 4; i++ {
				addPlayer(t, srv.URL, "P"+strconv.Itoa(i))
			}
			resp, _ := doJSON(t, http.MethodPost, srv.URL+"/teams/randomize", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			_, body := doJSON(t, http.MethodGet, srv.URL+"/players", nil)
			var players []model.Player
			So(json.Unmarshal(body, &players), ShouldBeNil)

			target := 1
			moveResp, _ := doJSON(t, http.MethodPost, srv.URL+"/players/"+players[0].ID+"/move",
				map[string]any{"teamIndex": target})

			Convey("Then the move succeeds", func() {
				So(moveResp.StatusCode, ShouldEqual, http.StatusOK)
			})

			Convey("And a null team index unassigns", func() {
				unassignResp, _ := doJSON(t, http.MethodPost, srv.URL+"/players/"+players[0].ID+"/move",
					map[string]any{"teamIndex": nil})
				So(unassignResp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestTeamsEndpoints(t *testing.T) {
	Convey("Given a server with eight players", t, func() {
		srv, _ := newTestServer()
		defer srv.Close()
		for i := 0; i < 8; i++ {
			addPlayer(t, srv.URL, "P"+strconv.Itoa(i))
		}

		Convey("When randomizing", func() {
			resp, body := doJSON(t, http.MethodPost, srv.URL+"/teams/randomize", nil)

			Convey("Then four teams of two come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var teams []model.Team
				So(json.Unmarshal(body, &teams), ShouldBeNil)
				So(teams, ShouldHaveLength, 4)
				for _, team := range teams {
					So(team.Players, ShouldHaveLength, 2)
				}
			})

			Convey("And GET /teams returns the same partition", func() {
				getResp, getBody := doJSON(t, http.MethodGet, srv.URL+"/teams", nil)
				So(getResp.StatusCode, ShouldEqual, http.StatusOK)
				var teams []model.Team
				So(json.Unmarshal(getBody, &teams), ShouldBeNil)
				So(teams, ShouldHaveLength, 4)
			})

			Convey("And a team can be renamed", func() {
				renameResp, _ := doJSON(t, http.MethodPatch, srv.URL+"/teams/0",
					map[string]string{"name": "The Sharks"})
				So(renameResp.StatusCode, ShouldEqual, http.StatusOK)

				_, getBody := doJSON(t, http.MethodGet, srv.URL+"/teams", nil)
				var teams []model.Team
				So(json.Unmarshal(getBody, &teams), ShouldBeNil)
				So(teams[0].Name, ShouldEqual, "The Sharks")
			})

			Convey("And validation answers for a team", func() {
				valResp, valBody := doJSON(t, http.MethodGet, srv.URL+"/teams/0/validation", nil)
				So(valResp.StatusCode, ShouldEqual, http.StatusOK)
				So(string(valBody), ShouldContainSubstring, `"isValid":true`)
			})

		})

		Convey("When a late arrival shows up after randomizing with spare capacity", func() {
			settingsResp, _ := doJSON(t, http.MethodPut, srv.URL+"/settings", model.Settings{TeamSize: 3})
			So(settingsResp.StatusCode, ShouldEqual, http.StatusOK)
			resp, _ := doJSON(t, http.MethodPost, srv.URL+"/teams/randomize", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			addPlayer(t, srv.URL, "Late")
			fillResp, fillBody := doJSON(t, http.MethodPost, srv.URL+"/teams/fill", nil)

			Convey("Then the fill pass places it", func() {
				So(fillResp.StatusCode, ShouldEqual, http.StatusOK)
				var teams []model.Team
				So(json.Unmarshal(fillBody, &teams), ShouldBeNil)
				total := 0
				for _, team := range teams {
					total += len(team.Players)
				}
				So(total, ShouldEqual, 9)
			})
		})

		Convey("When renaming with a blank name", func() {
			doJSON(t, http.MethodPost, srv.URL+"/teams/randomize", nil)
			resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/teams/0", map[string]string{"name": " "})

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When validating a bogus index", func() {
			resp, _ := doJSON(t, http.MethodGet, srv.URL+"/teams/99/validation", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSettingsEndpoints(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv, _ := newTestServer()
		defer srv.Close()

		Convey("When updating settings", func() {
			resp, body := doJSON(t, http.MethodPut, srv.URL+"/settings", model.Settings{
				EventName: "Summer Cup",
				TeamSize:  3,
			})

			Convey("Then the new settings come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var settings model.Settings
				So(json.Unmarshal(body, &settings), ShouldBeNil)
				So(settings.EventName, ShouldEqual, "Summer Cup")
				So(settings.TeamSize, ShouldEqual, 3)
			})
		})

		Convey("When the settings are invalid", func() {
			resp, _ := doJSON(t, http.MethodPut, srv.URL+"/settings", model.Settings{TeamSize: 0})

			So(resp.StatusCode, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}

func TestHistoryEndpoints(t *testing.T) {
	Convey("Given a server that randomized twice", t, func() {
		srv, _ := newTestServer()
		defer srv.Close()
		for i := 0; i < 4; i++ {
			addPlayer(t, srv.URL, "P"+strconv.Itoa(i))
		}
		doJSON(t, http.MethodPost, srv.URL+"/teams/randomize", nil)
		doJSON(t, http.MethodPost, srv.URL+"/teams/randomize", nil)

		Convey("When listing history", func() {
			resp, body := doJSON(t, http.MethodGet, srv.URL+"/history", nil)

			Convey("Then both snapshots are listed", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var entries []model.HistoryEntry
				So(json.Unmarshal(body, &entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
			})

			Convey("And one can be restored", func() {
				var entries []model.HistoryEntry
				So(json.Unmarshal(body, &entries), ShouldBeNil)

				restoreResp, _ := doJSON(t, http.MethodPost, srv.URL+"/history/"+entries[1].ID+"/restore", nil)
				So(restoreResp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When restoring an unknown entry", func() {
			resp, _ := doJSON(t, http.MethodPost, srv.URL+"/history/ghost/restore", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When clearing history", func() {
			resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/history", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			_, body := doJSON(t, http.MethodGet, srv.URL+"/history", nil)
			var entries []model.HistoryEntry
			So(json.Unmarshal(body, &entries), ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}

func TestTransferEndpoints(t *testing.T) {
	Convey("Given a populated server", t, func() {
		srv, _ := newTestServer()
		defer srv.Close()
		for i := 0; i < 4; i++ {
			addPlayer(t, srv.URL, "P"+strconv.Itoa(i))
		}
		doJSON(t, http.MethodPost, srv.URL+"/teams/randomize", nil)

		Convey("When exporting", func() {
			resp, body := doJSON(t, http.MethodGet, srv.URL+"/export", nil)

			Convey("Then a versioned document is downloaded", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Disposition"), ShouldContainSubstring, "teams-config.json")
				So(string(body), ShouldContainSubstring, `"version": "1.0"`)
			})

			Convey("And importing it into a fresh server succeeds", func() {
				fresh, _ := newTestServer()
				defer fresh.Close()

				req, err := http.NewRequest(http.MethodPost, fresh.URL+"/import", bytes.NewReader(body))
				So(err, ShouldBeNil)
				importResp, err := http.DefaultClient.Do(req)
				So(err, ShouldBeNil)
				defer importResp.Body.Close()
				So(importResp.StatusCode, ShouldEqual, http.StatusOK)

				_, playersBody := doJSON(t, http.MethodGet, fresh.URL+"/players", nil)
				var players []model.Player
				So(json.Unmarshal(playersBody, &players), ShouldBeNil)
				So(players, ShouldHaveLength, 4)
			})
		})

		Convey("When importing garbage", func() {
			req, err := http.NewRequest(http.MethodPost, srv.URL+"/import", strings.NewReader("{broken"))
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusUnprocessableEntity)
		})

		Convey("When requesting a share link", func() {
			resp, body := doJSON(t, http.MethodGet, srv.URL+"/share", nil)

			Convey("Then a fragment is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var share map[string]string
				So(json.Unmarshal(body, &share), ShouldBeNil)
				So(share["fragment"], ShouldNotBeEmpty)

				Convey("And the decode endpoint resolves it", func() {
					decodeResp, decodeBody := doJSON(t, http.MethodGet,
						srv.URL+"/share/decode?data="+share["fragment"], nil)
					So(decodeResp.StatusCode, ShouldEqual, http.StatusOK)
					So(string(decodeBody), ShouldContainSubstring, `"t":`)
				})
			})
		})

		Convey("When decoding without data", func() {
			resp, _ := doJSON(t, http.MethodGet, srv.URL+"/share/decode", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}
