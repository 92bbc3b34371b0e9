package export_test

import (
	"errors"
	"strings"
	"testing"

	export "github.com/rostermix/rostermix/internal/adapters/export"
	. "github.com/smartystreets/goconvey/convey"
)

func TestShareLink(t *testing.T) {
	Convey("Given a share payload", t, func() {
		payload := export.SharePayload{
			EventName:      "Summer Cup",
			OrganizerName:  "Sam",
			SkillBalancing: true,
			Timestamp:      1750000000000,
			Teams: []export.ShareTeam{
				{Name: "Team Ada", Players: []export.SharePlayer{
					{Name: "Ada", Skill: "expert"},
					{Name: "Bo"},
				}},
			},
			Categories: []export.ShareCategory{
				{ID: "expert", Name: "Expert", Color: "#f87171"},
			},
		}

		Convey("When encoding", func() {
			encoded, err := export.EncodeShare(payload)

			Convey("Then the fragment is URL-safe and unpadded", func() {
				So(err, ShouldBeNil)
				So(encoded, ShouldNotBeEmpty)
				So(strings.ContainsAny(encoded, "+/="), ShouldBeFalse)
			})

			Convey("And decoding restores the payload", func() {
				decoded, err := export.DecodeShare(encoded)
				So(err, ShouldBeNil)
				So(decoded.EventName, ShouldEqual, "Summer Cup")
				So(decoded.SkillBalancing, ShouldBeTrue)
				So(decoded.Teams, ShouldHaveLength, 1)
				So(decoded.Teams[0].Players[0].Name, ShouldEqual, "Ada")
				So(decoded.Teams[0].Players[0].Skill, ShouldEqual, "expert")
				So(decoded.Categories[0].Color, ShouldEqual, "#f87171")
				So(decoded.Timestamp, ShouldEqual, payload.Timestamp)
			})

			Convey("And a standard-alphabet mangled copy still decodes", func() {
				mangled := strings.NewReplacer("-", "+", "_", "/").Replace(encoded) + "=="
				decoded, err := export.DecodeShare(mangled)
				So(err, ShouldBeNil)
				So(decoded.EventName, ShouldEqual, "Summer Cup")
			})
		})

		Convey("When decoding garbage", func() {
			_, err := export.DecodeShare("!!!not-base64!!!")

			Convey("Then the share-link error comes back", func() {
				So(errors.Is(err, export.ErrInvalidShareLink), ShouldBeTrue)
			})
		})

		Convey("When decoding base64 that is not JSON", func() {
			_, err := export.DecodeShare("bm90IGpzb24")

			So(errors.Is(err, export.ErrInvalidShareLink), ShouldBeTrue)
		})
	})
}
