package category_test

import (
	"testing"

	category "github.com/partstack/benchrank/internal/domain/category"
	"github.com/partstack/benchrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDetect(t *testing.T) {
	Convey("Given free-text part names", t, func() {
		Convey("When the name carries a CPU keyword", func() {
			Convey("Then it is classified as CPU", func() {
				So(category.Detect("AMD Ryzen 7 7800X3D"), ShouldEqual, category.CPU)
				So(category.Detect("Intel Core i7-14700K"), ShouldEqual, category.CPU)
				So(category.Detect("Threadripper 7980X"), ShouldEqual, category.CPU)
			})
		})

		Convey("When the name carries a GPU keyword", func() {
			Convey("Then it is classified as GPU", func() {
				So(category.Detect("GeForce RTX 4070"), ShouldEqual, category.GPU)
				So(category.Detect("GTX 1080 Ti"), ShouldEqual, category.GPU)
				So(category.Detect("Arc A770"), ShouldEqual, category.GPU)
			})
		})

		Convey("When the name carries both kinds of keywords", func() {
			Convey("Then CPU keywords win", func() {
				So(category.Detect("Ryzen bundle with RTX 4070"), ShouldEqual, category.CPU)
			})
		})

		Convey("When the name matches no keyword", func() {
			Convey("Then it defaults to CPU", func() {
				So(category.Detect("Mystery Part 9000"), ShouldEqual, category.CPU)
			})
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given explicit category strings", t, func() {
		Convey("When the string names a known category", func() {
			Convey("Then it parses case-insensitively", func() {
				cat, ok := category.Parse("GPU", "")
				So(ok, ShouldBeTrue)
				So(cat, ShouldEqual, category.GPU)

				cat, ok = category.Parse(" cpu ", "")
				So(ok, ShouldBeTrue)
				So(cat, ShouldEqual, category.CPU)
			})
		})

		Convey("When the string is empty", func() {
			cat, ok := category.Parse("", "GeForce RTX 4070")

			Convey("Then the part name is auto-detected", func() {
				So(ok, ShouldBeTrue)
				So(cat, ShouldEqual, category.GPU)
			})
		})

		Convey("When the string is unknown", func() {
			_, ok := category.Parse("motherboard", "")

			Convey("Then parsing fails", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestCatalogKind(t *testing.T) {
	Convey("Given category and benchmark type pairs", t, func() {
		Convey("When the category is GPU", func() {
			Convey("Then the GPU catalog is chosen regardless of type", func() {
				So(category.CatalogKind(category.GPU, "software"), ShouldEqual, model.KindGPU)
				So(category.CatalogKind(category.GPU, ""), ShouldEqual, model.KindGPU)
			})
		})

		Convey("When the category is CPU", func() {
			Convey("Then the benchmark type picks the catalog", func() {
				So(category.CatalogKind(category.CPU, "software"), ShouldEqual, model.KindCPUSoftware)
				So(category.CatalogKind(category.CPU, "gaming"), ShouldEqual, model.KindCPUGaming)
				So(category.CatalogKind(category.CPU, ""), ShouldEqual, model.KindCPUGaming)
				So(category.CatalogKind(category.CPU, "anything-else"), ShouldEqual, model.KindCPUGaming)
			})
		})
	})
}
