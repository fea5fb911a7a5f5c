package alu_test

//go:generate mockgen -destination mock_warpresumer_test.go -package alu_test -write_package_comment=false github.com/sarchlab/vcoresim/fu/alu WarpResumer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/vcoresim/fu/alu"
	"github.com/sarchlab/vcoresim/sim"
	"github.com/sarchlab/vcoresim/trace"
)

func TestDelayScenarios(t *testing.T) {
	cases := []struct {
		name        string
		aluType     trace.ALUType
		latencyIMUL int
		xlen        int
		wantCycle   uint64
	}{
		{"arith", trace.ARITH, 3, 32, 4},
		{"branch", trace.BRANCH, 3, 32, 4},
		{"syscall", trace.SYSCALL, 3, 32, 4},
		{"imul", trace.IMUL, 3, 32, 5},
		{"idiv", trace.IDIV, 3, 32, 34},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resumer := NewMockWarpResumer(ctrl)
			resumer.EXPECT().Resume(uint32(1)).Times(1)

			driver := sim.NewDriver()
			unit := alu.NewUnit("ALU", driver, 1, c.latencyIMUL, c.xlen, resumer)
			driver.Register(unit)

			tr := &trace.Trace{WID: 1, EOP: true, FetchStall: true, ALUType: c.aluType}
			unit.Inputs[0].Inject(tr)

			driver.Run(c.wantCycle - 1)
			assert.True(t, unit.Outputs[0].Empty())

			driver.Run(1)
			assert.Equal(t, tr, unit.Outputs[0].Front())
		})
	}
}

func TestUnknownALUTypePanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	resumer := NewMockWarpResumer(ctrl)

	driver := sim.NewDriver()
	unit := alu.NewUnit("ALU", driver, 1, 3, 32, resumer)
	driver.Register(unit)

	tr := &trace.Trace{ALUType: trace.ALUType(99)}
	unit.Inputs[0].Inject(tr)

	assert.Panics(t, func() { driver.Tick() })
}

func TestNoResumeWithoutFetchStall(t *testing.T) {
	ctrl := gomock.NewController(t)
	resumer := NewMockWarpResumer(ctrl)

	driver := sim.NewDriver()
	unit := alu.NewUnit("ALU", driver, 1, 3, 32, resumer)
	driver.Register(unit)

	tr := &trace.Trace{WID: 2, EOP: true, FetchStall: false, ALUType: trace.ARITH}
	unit.Inputs[0].Inject(tr)

	driver.Run(4)
}
