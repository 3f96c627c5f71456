package ranking_test

import (
	"fmt"
	"testing"

	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/profile"
	"github.com/jmckinley/jumpstart/internal/domain/ranking"
	"github.com/jmckinley/jumpstart/internal/domain/scoring"
	"github.com/jmckinley/jumpstart/internal/domain/tags"
	. "github.com/smartystreets/goconvey/convey"
)

func tsProject() *profile.Profile {
	return &profile.Profile{
		ProjectID: "p1",
		Language:  "TypeScript",
		Framework: "Next.js",
	}
}

func item(slug, name string, declared ...tags.Tag) catalog.Item {
	return catalog.Item{Slug: slug, Name: name, Tags: declared}
}

func TestRanker_Rank(t *testing.T) {
	Convey("Given a ranker without a cap", t, func() {
		ranker := ranking.New()

		Convey("When the catalog is empty", func() {
			So(ranker.Rank(nil, tsProject()), ShouldBeEmpty)
		})

		Convey("When the project is nil", func() {
			items := []catalog.Item{
				item("a", "Alpha", tags.TypeScript),
				item("u", "Upsilon", tags.Universal),
				item("b", "Beta", tags.Go),
			}
			scored := ranker.Rank(items, nil)

			Convey("Then only the universal item is recommended", func() {
				So(len(scored), ShouldEqual, 3)
				So(scored[0].Item.Slug, ShouldEqual, "u")
				So(scored[0].Score, ShouldEqual, 75)
				So(scored[0].Recommended, ShouldBeTrue)
				So(scored[1].Score, ShouldEqual, 0)
				So(scored[2].Score, ShouldEqual, 0)
			})

			Convey("And non-recommended items sort by display name", func() {
				So(scored[1].Item.Name, ShouldEqual, "Alpha")
				So(scored[2].Item.Name, ShouldEqual, "Beta")
			})
		})

		Convey("When items tie on score", func() {
			items := []catalog.Item{
				item("first", "First", tags.TypeScript),
				item("second", "Second", tags.TypeScript),
			}
			scored := ranker.Rank(items, tsProject())

			Convey("Then catalog order breaks the tie", func() {
				So(scored[0].Item.Slug, ShouldEqual, "first")
				So(scored[1].Item.Slug, ShouldEqual, "second")
				So(scored[0].Score, ShouldEqual, scored[1].Score)
			})
		})

		Convey("When results mix recommended and not", func() {
			items := []catalog.Item{
				item("zeta", "Zeta", tags.Rust),
				item("match", "Match", tags.TypeScript, tags.NextJS),
				item("alpha", "Alpha", tags.Python),
			}
			scored := ranker.Rank(items, tsProject())

			Convey("Then every recommended item precedes every non-recommended one", func() {
				So(scored[0].Item.Slug, ShouldEqual, "match")
				So(scored[0].Recommended, ShouldBeTrue)
				So(scored[1].Item.Name, ShouldEqual, "Alpha")
				So(scored[2].Item.Name, ShouldEqual, "Zeta")
			})

			Convey("And the result is length-preserving", func() {
				So(len(scored), ShouldEqual, len(items))
			})
		})

		Convey("When ranking twice with identical inputs", func() {
			items := []catalog.Item{
				item("a", "Alpha", tags.TypeScript),
				item("u", "Upsilon", tags.Universal),
				item("b", "Beta", tags.NextJS, tags.React),
			}
			first := ranker.Rank(items, tsProject())
			second := ranker.Rank(items, tsProject())

			Convey("Then output is deep-equal", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestRanker_Cap(t *testing.T) {
	Convey("Given a ranker with the team cap", t, func() {
		ranker := ranking.ForKind(catalog.KindTeam)

		Convey("When five universal teams are ranked", func() {
			items := make([]catalog.Item, 5)
			for i := range items {
				items[i] = item(
					fmt.Sprintf("team-%d", i),
					fmt.Sprintf("Team %d", i),
					tags.Universal,
				)
			}
			scored := ranker.Rank(items, nil)

			Convey("Then exactly three stay recommended", func() {
				recommended := 0
				for _, si := range scored {
					if si.Recommended {
						recommended++
					}
				}
				So(recommended, ShouldEqual, 3)
			})

			Convey("And demoted teams keep their score", func() {
				for _, si := range scored {
					So(si.Score, ShouldEqual, 75)
				}
			})

			Convey("And ties keep catalog order among the kept ones", func() {
				So(scored[0].Item.Slug, ShouldEqual, "team-0")
				So(scored[1].Item.Slug, ShouldEqual, "team-1")
				So(scored[2].Item.Slug, ShouldEqual, "team-2")
			})
		})

		Convey("When scores differ", func() {
			items := []catalog.Item{
				item("low", "Low", tags.TypeScript, tags.Go, tags.Rust, tags.Python), // 50
				item("mid", "Mid", tags.TypeScript),                                  // 60
				item("high", "High", tags.TypeScript, tags.NextJS),                   // 80
				item("top", "Top", tags.TypeScript, tags.NextJS, tags.React),         // 100 vs ts+next+react project
				item("none", "None", tags.Django),                                    // 0
			}
			p := &profile.Profile{
				ProjectID: "p2",
				Language:  "TypeScript",
				Framework: "Next.js",
				Styling:   "react", // every stack field resolves through the same dictionary
			}
			scored := ranker.Rank(items, p)

			Convey("Then the cap keeps the highest scorers", func() {
				So(scored[0].Item.Slug, ShouldEqual, "top")
				So(scored[1].Item.Slug, ShouldEqual, "high")
				So(scored[2].Item.Slug, ShouldEqual, "mid")
				So(scored[0].Recommended, ShouldBeTrue)
				So(scored[1].Recommended, ShouldBeTrue)
				So(scored[2].Recommended, ShouldBeTrue)
			})

			Convey("And the demoted item keeps its score but loses the flag", func() {
				var low ranking.ScoredItem
				for _, si := range scored {
					if si.Item.Slug == "low" {
						low = si
					}
				}
				So(low.Score, ShouldEqual, 50)
				So(low.Recommended, ShouldBeFalse)
			})
		})
	})

	Convey("Given the per-kind cap presets", t, func() {
		Convey("Then templates cap at five", func() {
			ranker := ranking.ForKind(catalog.KindTemplate)
			items := make([]catalog.Item, 8)
			for i := range items {
				items[i] = item(fmt.Sprintf("t-%d", i), fmt.Sprintf("T %d", i), tags.Universal)
			}
			recommended := 0
			for _, si := range ranker.Rank(items, nil) {
				if si.Recommended {
					recommended++
				}
			}
			So(recommended, ShouldEqual, 5)
		})

		Convey("Then agents are uncapped", func() {
			ranker := ranking.ForKind(catalog.KindAgent)
			items := make([]catalog.Item, 8)
			for i := range items {
				items[i] = item(fmt.Sprintf("a-%d", i), fmt.Sprintf("A %d", i), tags.Universal)
			}
			recommended := 0
			for _, si := range ranker.Rank(items, nil) {
				if si.Recommended {
					recommended++
				}
			}
			So(recommended, ShouldEqual, 8)
		})
	})
}

func TestRanker_LegacyScorer(t *testing.T) {
	Convey("Given a ranker wired with a legacy scorer", t, func() {
		ranker := ranking.New(
			ranking.WithScorer(scoring.New(scoring.WithMode(scoring.ModeLegacy))),
		)

		Convey("When ranking a universal item", func() {
			scored := ranker.Rank([]catalog.Item{item("u", "U", tags.Universal)}, nil)

			Convey("Then the legacy universal score flows through", func() {
				So(scored[0].Score, ShouldEqual, 60)
				So(scored[0].Recommended, ShouldBeTrue)
			})
		})
	})
}
