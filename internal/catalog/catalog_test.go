package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/tags"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseKind(t *testing.T) {
	Convey("Given the catalog kinds", t, func() {
		Convey("When parsing valid kind names", func() {
			for _, name := range []string{"template", "agent", "team", " Team "} {
				_, err := catalog.ParseKind(name)
				So(err, ShouldBeNil)
			}
		})

		Convey("When parsing an unknown kind", func() {
			_, err := catalog.ParseKind("workflow")
			So(err, ShouldWrap, catalog.ErrUnknownKind)
		})

		Convey("Then caps match the kind", func() {
			So(catalog.KindTemplate.RecommendationCap(), ShouldEqual, 5)
			So(catalog.KindTeam.RecommendationCap(), ShouldEqual, 3)
			So(catalog.KindAgent.RecommendationCap(), ShouldEqual, 0)
		})
	})
}

func TestItemValidate(t *testing.T) {
	Convey("Given catalog items", t, func() {
		valid := catalog.Item{
			Slug: "add-page",
			Name: "Add Page",
			Tags: []tags.Tag{tags.React},
		}

		Convey("Then a well-formed item validates", func() {
			So(valid.Validate(), ShouldBeNil)
		})

		Convey("Then a missing slug is rejected", func() {
			broken := valid
			broken.Slug = " "
			So(broken.Validate(), ShouldWrap, catalog.ErrInvalidItem)
		})

		Convey("Then a missing name is rejected", func() {
			broken := valid
			broken.Name = ""
			So(broken.Validate(), ShouldWrap, catalog.ErrInvalidItem)
		})

		Convey("Then an empty tag set is rejected", func() {
			broken := valid
			broken.Tags = nil
			So(broken.Validate(), ShouldWrap, catalog.ErrInvalidItem)
		})

		Convey("Then a tag outside the vocabulary is rejected", func() {
			broken := valid
			broken.Tags = []tags.Tag{"fortran"}
			So(broken.Validate(), ShouldWrap, catalog.ErrInvalidItem)
		})
	})
}

func TestBuiltin(t *testing.T) {
	Convey("Given the embedded catalogs", t, func() {
		catalogs, err := catalog.Builtin()
		So(err, ShouldBeNil)

		Convey("Then every kind has items", func() {
			for _, kind := range catalog.Kinds() {
				So(len(catalogs[kind]), ShouldBeGreaterThan, 0)
			}
		})

		Convey("Then every item is valid", func() {
			for _, kind := range catalog.Kinds() {
				for _, item := range catalogs[kind] {
					So(item.Validate(), ShouldBeNil)
				}
			}
		})

		Convey("Then each kind carries at least one universal item", func() {
			for _, kind := range catalog.Kinds() {
				universal := false
				for _, item := range catalogs[kind] {
					for _, tg := range item.Tags {
						if tg == tags.Universal {
							universal = true
						}
					}
				}
				So(universal, ShouldBeTrue)
			}
		})
	})
}

func TestLoadFileAndMerge(t *testing.T) {
	Convey("Given a catalog overlay file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		overlayYAML := `
templates:
  - slug: my-template
    name: My Template
    tags: [go]
`
		So(os.WriteFile(path, []byte(overlayYAML), 0o600), ShouldBeNil)

		overlay, err := catalog.LoadFile(path)
		So(err, ShouldBeNil)
		So(len(overlay[catalog.KindTemplate]), ShouldEqual, 1)

		Convey("When merged after the built-ins", func() {
			builtin, err := catalog.Builtin()
			So(err, ShouldBeNil)

			merged, err := catalog.Merge(builtin, overlay)
			So(err, ShouldBeNil)

			Convey("Then overlay items append after built-ins", func() {
				items := merged[catalog.KindTemplate]
				So(len(items), ShouldEqual, len(builtin[catalog.KindTemplate])+1)
				So(items[len(items)-1].Slug, ShouldEqual, "my-template")
			})
		})

		Convey("When the overlay repeats a built-in slug", func() {
			builtin, err := catalog.Builtin()
			So(err, ShouldBeNil)

			dup := map[catalog.Kind][]catalog.Item{
				catalog.KindTemplate: {{
					Slug: builtin[catalog.KindTemplate][0].Slug,
					Name: "Shadowing",
					Tags: []tags.Tag{tags.Go},
				}},
			}
			_, err = catalog.Merge(builtin, dup)
			So(err, ShouldWrap, catalog.ErrDuplicateSlug)
		})
	})

	Convey("Given an overlay with an invalid item", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		badYAML := `
agents:
  - slug: nameless
    tags: [go]
`
		So(os.WriteFile(path, []byte(badYAML), 0o600), ShouldBeNil)

		_, err := catalog.LoadFile(path)
		So(err, ShouldWrap, catalog.ErrInvalidItem)
	})

	Convey("Given a missing overlay file", t, func() {
		_, err := catalog.LoadFile("/does/not/exist.yaml")
		So(err, ShouldNotBeNil)
	})
}
