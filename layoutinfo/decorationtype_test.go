package layoutinfo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/layoutinfo"
)

var _ = Describe("DecorationType", func() {
	It("names the declared type and falls back on out of range", func() {
		Expect(layoutinfo.DecorationTextElement.String()).To(Equal("text_element"))
		Expect(layoutinfo.DecorationType(99).String()).To(Equal("invalid"))
	})

	It("looks up minimum size constraints", func() {
		info := layoutinfo.LookupDecoration(layoutinfo.DecorationTextElement)
		Expect(info.MinWidth).To(Equal(int32(1)))
		Expect(info.MinHeight).To(Equal(int32(1)))
	})
})
