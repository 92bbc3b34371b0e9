package assign_test

import (
	"testing"

	assign "github.com/rostermix/rostermix/internal/domain/assign"
	"github.com/rostermix/rostermix/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStandard(t *testing.T) {
	Convey("Given a randomizer with a fixed seed", t, func() {
		r := assign.New(assign.WithSeed(1))

		Convey("When randomizing eight players into four teams", func() {
			players := playersNamed("p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8")
			teams := r.Standard(players, 4)

			Convey("Then every team holds exactly two players", func() {
				So(teams, ShouldHaveLength, 4)
				for _, team := range teams {
					So(team.Players, ShouldHaveLength, 2)
				}
			})

			Convey("And every player appears exactly once", func() {
				seen := map[string]int{}
				for _, team := range teams {
					for _, p := range team.Players {
						seen[p.ID]++
					}
				}
				So(seen, ShouldHaveLength, 8)
				for _, n := range seen {
					So(n, ShouldEqual, 1)
				}
			})
		})

		Convey("When a locked player carries a valid team index", func() {
			players := playersNamed("p1", "p2", "p3")
			players[0].Locked = true
			players[0].TeamID = model.TeamRef(1)

			teams := r.Standard(players, 2)

			Convey("Then it stays pinned to that team", func() {
				found := false
				for _, p := range teams[1].Players {
					if p.ID == "p1" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When a locked player carries a stale team index", func() {
			players := playersNamed("p1", "p2", "p3")
			players[0].Locked = true
			players[0].TeamID = model.TeamRef(9)

			teams := r.Standard(players, 2)

			Convey("Then it falls back onto the first team", func() {
				found := false
				for _, p := range teams[0].Players {
					if p.ID == "p1" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When two seeds match", func() {
			players := playersNamed("p1", "p2", "p3", "p4", "p5", "p6")
			first := assign.New(assign.WithSeed(99)).Standard(players, 3)
			second := assign.New(assign.WithSeed(99)).Standard(players, 3)

			Convey("Then the partitions are identical", func() {
				for i := range first {
					So(len(first[i].Players), ShouldEqual, len(second[i].Players))
					for j := range first[i].Players {
						So(first[i].Players[j].ID, ShouldEqual, second[i].Players[j].ID)
					}
				}
			})
		})

		Convey("When the team count is zero", func() {
			teams := r.Standard(playersNamed("p1"), 0)

			Convey("Then no teams are produced", func() {
				So(teams, ShouldBeEmpty)
			})
		})
	})
}

func TestSkillBalanced(t *testing.T) {
	Convey("Given a randomizer and skill categories", t, func() {
		r := assign.New(assign.WithSeed(5))
		categories := []model.SkillCategory{
			{ID: "beginner", Name: "Beginner"},
			{ID: "expert", Name: "Expert"},
		}

		Convey("When composition rules require one expert per team", func() {
			players := []model.Player{
				{ID: "e1", Name: "E1", SkillLevel: "expert"},
				{ID: "e2", Name: "E2", SkillLevel: "expert"},
				{ID: "b1", Name: "B1", SkillLevel: "beginner"},
				{ID: "b2", Name: "B2", SkillLevel: "beginner"},
			}
			rules := model.CompositionRules{"expert": 1}

			teams := r.SkillBalanced(players, 2, categories, rules, 0)

			Convey("Then each team gets exactly one expert", func() {
				So(teams, ShouldHaveLength, 2)
				for _, team := range teams {
					experts := 0
					for _, p := range team.Players {
						if p.SkillLevel == "expert" {
							experts++
						}
					}
					So(experts, ShouldEqual, 1)
				}
			})
		})

		Convey("When a capped event cannot sustain the rules", func() {
			players := []model.Player{
				{ID: "e1", Name: "E1", SkillLevel: "expert"},
				{ID: "b1", Name: "B1", SkillLevel: "beginner"},
				{ID: "b2", Name: "B2", SkillLevel: "beginner"},
				{ID: "b3", Name: "B3", SkillLevel: "beginner"},
			}
			rules := model.CompositionRules{"expert": 1}

			teams := r.SkillBalanced(players, 3, categories, rules, 3)

			Convey("Then the team count drops to what experts allow", func() {
				So(teams, ShouldHaveLength, 1)
			})
		})

		Convey("When no rules exist", func() {
			players := []model.Player{
				{ID: "e1", Name: "E1", SkillLevel: "expert"},
				{ID: "e2", Name: "E2", SkillLevel: "expert"},
				{ID: "b1", Name: "B1", SkillLevel: "beginner"},
				{ID: "b2", Name: "B2", SkillLevel: "beginner"},
			}

			teams := r.SkillBalanced(players, 2, categories, nil, 0)

			Convey("Then players spread evenly with mixed skills", func() {
				So(teams, ShouldHaveLength, 2)
				for _, team := range teams {
					So(team.Players, ShouldHaveLength, 2)
				}
			})
		})

		Convey("When locked players are present", func() {
			players := []model.Player{
				{ID: "l1", Name: "L1", SkillLevel: "expert", Locked: true, TeamID: model.TeamRef(0)},
				{ID: "b1", Name: "B1", SkillLevel: "beginner"},
				{ID: "b2", Name: "B2", SkillLevel: "beginner"},
			}

			teams := r.SkillBalanced(players, 2, categories, nil, 0)

			Convey("Then the locked player is re-attached to its team", func() {
				found := false
				for _, p := range teams[0].Players {
					if p.ID == "l1" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}
