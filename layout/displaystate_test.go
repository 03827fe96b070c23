package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/logiksim/circuitcore/layout"
)

var _ = Describe("DisplayState.String", func() {
	DescribeTable("names every declared state",
		func(s layout.DisplayState, want string) {
			Expect(s.String()).To(Equal(want))
		},
		Entry("temporary", layout.StateTemporary, "temporary"),
		Entry("colliding", layout.StateColliding, "colliding"),
		Entry("valid", layout.StateValid, "valid"),
		Entry("normal", layout.StateNormal, "normal"),
		Entry("out of range falls back to invalid", layout.DisplayState(99), "invalid"),
	)
})
