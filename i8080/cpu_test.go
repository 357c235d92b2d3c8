package i8080

import (
	"fmt"
	"strings"
	"testing"
)

// run loads prog at 0 and steps until halt or the step budget runs out.
func run(t *testing.T, c *CPU, prog []uint8) {
	t.Helper()
	c.Load(prog, 0)
	for i := 0; i < 10000; i++ {
		if !c.Step(NopTracer) {
			return
		}
	}
	t.Fatalf("program did not halt")
}

func TestResetState(t *testing.T) {
	c := NewCPU()
	if c.pc != 0 || c.sp != 0 {
		t.Errorf("pc/sp not zero: %04X %04X", c.pc, c.sp)
	}
	if c.intEnabled {
		t.Error("interrupts should start disabled")
	}
	if c.nextWakeup != CyclesPerHalfFrame {
		t.Errorf("nextWakeup: got %d, want %d", c.nextWakeup, CyclesPerHalfFrame)
	}
	if c.nextIntOp != 0xCF {
		t.Errorf("nextIntOp: got %02X, want CF", c.nextIntOp)
	}
}

func TestAddFlags(t *testing.T) {
	tests := []struct {
		a, val uint8
		wantA  uint8
		wantCY uint8
		wantZ  uint8
		wantS  uint8
		wantP  uint8
	}{
		{0x00, 0x00, 0x00, 0, 1, 0, 1},
		{0xFF, 0x01, 0x00, 1, 1, 0, 1},
		{0x7F, 0x01, 0x80, 0, 0, 1, 0},
		{0x10, 0x22, 0x32, 0, 0, 0, 0},
		{0x80, 0x80, 0x00, 1, 1, 0, 1},
		{0x01, 0x01, 0x02, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		c := NewCPU()
		run(t, c, []uint8{0x3E, tc.a, 0xC6, tc.val, 0x76})
		if c.reg.A != tc.wantA {
			t.Errorf("ADI %02X+%02X: A=%02X, want %02X", tc.a, tc.val, c.reg.A, tc.wantA)
		}
		if c.flags.CY != tc.wantCY {
			t.Errorf("ADI %02X+%02X: CY=%d, want %d", tc.a, tc.val, c.flags.CY, tc.wantCY)
		}
		if c.flags.Z != tc.wantZ {
			t.Errorf("ADI %02X+%02X: Z=%d, want %d", tc.a, tc.val, c.flags.Z, tc.wantZ)
		}
		if c.flags.S != tc.wantS {
			t.Errorf("ADI %02X+%02X: S=%d, want %d", tc.a, tc.val, c.flags.S, tc.wantS)
		}
		if c.flags.P != tc.wantP {
			t.Errorf("ADI %02X+%02X: P=%d, want %d", tc.a, tc.val, c.flags.P, tc.wantP)
		}
	}
}

func TestAdcUsesCarry(t *testing.T) {
	// STC; MVI A,FE; ACI 01 -> FE + 01 + 1 = 100
	c := NewCPU()
	run(t, c, []uint8{0x37, 0x3E, 0xFE, 0xCE, 0x01, 0x76})
	if c.reg.A != 0x00 {
		t.Errorf("A=%02X, want 00", c.reg.A)
	}
	if c.flags.CY != 1 || c.flags.Z != 1 {
		t.Errorf("CY=%d Z=%d, want 1 1", c.flags.CY, c.flags.Z)
	}
}

func TestCompareBorrow(t *testing.T) {
	// A=10 CMP 20: borrow, negative result, A untouched
	c := NewCPU()
	run(t, c, []uint8{0x3E, 0x10, 0xFE, 0x20, 0x76})
	if c.flags.CY != 1 || c.flags.Z != 0 || c.flags.S != 1 {
		t.Errorf("CPI 20 vs 10: CY=%d Z=%d S=%d, want 1 0 1", c.flags.CY, c.flags.Z, c.flags.S)
	}
	if c.reg.A != 0x10 {
		t.Errorf("CMP clobbered A: %02X", c.reg.A)
	}

	// A=20 CMP 20: equal
	c = NewCPU()
	run(t, c, []uint8{0x3E, 0x20, 0xFE, 0x20, 0x76})
	if c.flags.CY != 0 || c.flags.Z != 1 || c.flags.S != 0 {
		t.Errorf("CPI 20 vs 20: CY=%d Z=%d S=%d, want 0 1 0", c.flags.CY, c.flags.Z, c.flags.S)
	}
}

func TestSbbBorrowChain(t *testing.T) {
	// STC; MVI A,00; SBI 00 -> 0 - 0 - 1 = FF with borrow out
	c := NewCPU()
	run(t, c, []uint8{0x37, 0x3E, 0x00, 0xDE, 0x00, 0x76})
	if c.reg.A != 0xFF {
		t.Errorf("A=%02X, want FF", c.reg.A)
	}
	if c.flags.CY != 1 || c.flags.S != 1 || c.flags.Z != 0 {
		t.Errorf("CY=%d S=%d Z=%d, want 1 1 0", c.flags.CY, c.flags.S, c.flags.Z)
	}
}

func TestSbbZeroResultFlags(t *testing.T) {
	// STC; MVI A,01; SBI 00 -> 01 - 0 - 1 = 0, no borrow
	c := NewCPU()
	run(t, c, []uint8{0x37, 0x3E, 0x01, 0xDE, 0x00, 0x76})
	if c.reg.A != 0x00 || c.flags.Z != 1 || c.flags.CY != 0 {
		t.Errorf("A=%02X Z=%d CY=%d, want 00 1 0", c.reg.A, c.flags.Z, c.flags.CY)
	}
}

func TestLogicalOpsClearCarry(t *testing.T) {
	ops := []uint8{0xE6, 0xEE, 0xF6} // ANI, XRI, ORI
	for _, op := range ops {
		c := NewCPU()
		run(t, c, []uint8{0x37, 0x3E, 0x0F, op, 0xF0, 0x76})
		if c.flags.CY != 0 {
			t.Errorf("op %02X left carry set", op)
		}
	}
}

func TestInrDcrPreserveCarry(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := NewCPU()
		c.flags.CY = 1
		c.reg.B = uint8(b)
		c.reg.B = c.inr(c.reg.B)
		c.reg.B = c.dcr(c.reg.B)
		if c.reg.B != uint8(b) {
			t.Fatalf("DCR(INR(%02X)) = %02X", b, c.reg.B)
		}
		if c.flags.CY != 1 {
			t.Fatalf("INR/DCR of %02X touched carry", b)
		}
		c.reg.B = c.dcr(c.reg.B)
		c.reg.B = c.inr(c.reg.B)
		if c.reg.B != uint8(b) {
			t.Fatalf("INR(DCR(%02X)) = %02X", b, c.reg.B)
		}
	}
}

func TestInrWraps(t *testing.T) {
	c := NewCPU()
	run(t, c, []uint8{0x3E, 0xFF, 0x3C, 0x76}) // MVI A,FF; INR A
	if c.reg.A != 0x00 || c.flags.Z != 1 || c.flags.CY != 0 {
		t.Errorf("INR FF: A=%02X Z=%d CY=%d, want 00 1 0", c.reg.A, c.flags.Z, c.flags.CY)
	}
}

func TestDadCarry(t *testing.T) {
	// LXI H,FFFF; LXI B,0001; DAD B
	c := NewCPU()
	run(t, c, []uint8{0x21, 0xFF, 0xFF, 0x01, 0x01, 0x00, 0x09, 0x76})
	if c.getHL() != 0x0000 || c.flags.CY != 1 {
		t.Errorf("DAD: HL=%04X CY=%d, want 0000 1", c.getHL(), c.flags.CY)
	}

	c = NewCPU()
	run(t, c, []uint8{0x21, 0x34, 0x12, 0x01, 0x11, 0x11, 0x09, 0x76})
	if c.getHL() != 0x2345 || c.flags.CY != 0 {
		t.Errorf("DAD: HL=%04X CY=%d, want 2345 0", c.getHL(), c.flags.CY)
	}
}

func TestInxDcxNoFlags(t *testing.T) {
	c := NewCPU()
	c.flags.CY = 1
	c.flags.Z = 1
	run(t, c, []uint8{0x01, 0xFF, 0xFF, 0x03, 0x76}) // LXI B,FFFF; INX B
	if c.getBC() != 0x0000 {
		t.Errorf("INX: BC=%04X, want 0000", c.getBC())
	}
	if c.flags.CY != 1 || c.flags.Z != 1 {
		t.Error("INX touched flags")
	}
}

func TestPswPackLayout(t *testing.T) {
	c := NewCPU()
	c.sp = 0x2400
	c.reg.A = 0x5A
	c.flags.S, c.flags.Z, c.flags.P, c.flags.CY = 1, 0, 1, 0
	pushPSW(c)
	if got := c.read(0x23FF); got != 0x5A {
		t.Errorf("PSW high byte: %02X, want 5A", got)
	}
	// S | P | constant bit 1
	if got := c.read(0x23FE); got != 0x86 {
		t.Errorf("PSW flag byte: %02X, want 86", got)
	}
}

func TestPswRoundTrip(t *testing.T) {
	for bits := 0; bits < 32; bits++ {
		c := NewCPU()
		c.sp = 0x2400
		c.reg.A = 0x5A
		c.flags.S = uint8(bits) & 1
		c.flags.Z = uint8(bits>>1) & 1
		c.flags.P = uint8(bits>>2) & 1
		c.flags.CY = uint8(bits>>3) & 1
		c.flags.AC = uint8(bits>>4) & 1
		want := *c.flags
		pushPSW(c)
		c.reg.A = 0
		*c.flags = Flags{}
		popPSW(c)
		if c.reg.A != 0x5A {
			t.Fatalf("bits %05b: A=%02X, want 5A", bits, c.reg.A)
		}
		if *c.flags != want {
			t.Fatalf("bits %05b: flags %+v, want %+v", bits, *c.flags, want)
		}
		if c.sp != 0x2400 {
			t.Fatalf("bits %05b: SP=%04X, want 2400", bits, c.sp)
		}
	}
}

func TestStackDiscipline(t *testing.T) {
	// LXI SP,2400; LXI B,1234; PUSH B; LXI B,0000; POP B
	c := NewCPU()
	run(t, c, []uint8{0x31, 0x00, 0x24, 0x01, 0x34, 0x12, 0xC5, 0x01, 0x00, 0x00, 0xC1, 0x76})
	if c.getBC() != 0x1234 {
		t.Errorf("BC=%04X, want 1234", c.getBC())
	}
	if c.sp != 0x2400 {
		t.Errorf("SP=%04X, want 2400", c.sp)
	}
}

func TestPushOrder(t *testing.T) {
	c := NewCPU()
	c.sp = 0x2400
	c.setDE(0xABCD)
	pushD(c)
	if c.read(0x23FF) != 0xAB || c.read(0x23FE) != 0xCD {
		t.Errorf("PUSH D wrote %02X %02X, want AB CD", c.read(0x23FF), c.read(0x23FE))
	}
	if c.sp != 0x23FE {
		t.Errorf("SP=%04X, want 23FE", c.sp)
	}
}

func TestRotates(t *testing.T) {
	tests := []struct {
		op     uint8
		a      uint8
		cyIn   uint8
		wantA  uint8
		wantCY uint8
	}{
		{0x07, 0x81, 0, 0x03, 1}, // RLC
		{0x0F, 0x01, 0, 0x80, 1}, // RRC
		{0x17, 0x80, 1, 0x01, 1}, // RAL
		{0x1F, 0x01, 1, 0x80, 1}, // RAR
		{0x17, 0x01, 0, 0x02, 0}, // RAL carry clear
		{0x1F, 0x80, 0, 0x40, 0}, // RAR carry clear
	}
	for _, tc := range tests {
		c := NewCPU()
		c.flags.CY = tc.cyIn
		c.reg.A = tc.a
		c.Load([]uint8{tc.op, 0x76}, 0)
		c.Step(NopTracer)
		if c.reg.A != tc.wantA || c.flags.CY != tc.wantCY {
			t.Errorf("op %02X A=%02X cy=%d: got A=%02X CY=%d, want A=%02X CY=%d",
				tc.op, tc.a, tc.cyIn, c.reg.A, c.flags.CY, tc.wantA, tc.wantCY)
		}
	}
}

func TestCmaNoFlags(t *testing.T) {
	c := NewCPU()
	c.flags.Z = 1
	run(t, c, []uint8{0x3E, 0x0F, 0x2F, 0x76})
	if c.reg.A != 0xF0 {
		t.Errorf("CMA: A=%02X, want F0", c.reg.A)
	}
	// MVI and CMA set no flags
	if c.flags.Z != 1 {
		t.Errorf("CMA touched flags")
	}
}

func TestXchg(t *testing.T) {
	c := NewCPU()
	c.setDE(0x1122)
	c.setHL(0x3344)
	run(t, c, []uint8{0xEB, 0x76})
	if c.getDE() != 0x3344 || c.getHL() != 0x1122 {
		t.Errorf("XCHG: DE=%04X HL=%04X", c.getDE(), c.getHL())
	}
}

func TestXthl(t *testing.T) {
	c := NewCPU()
	c.sp = 0x2300
	c.write(0x2300, 0xCD)
	c.write(0x2301, 0xAB)
	c.setHL(0x1234)
	run(t, c, []uint8{0xE3, 0x76})
	if c.getHL() != 0xABCD {
		t.Errorf("XTHL: HL=%04X, want ABCD", c.getHL())
	}
	if c.read(0x2300) != 0x34 || c.read(0x2301) != 0x12 {
		t.Errorf("XTHL: stack %02X %02X, want 34 12", c.read(0x2300), c.read(0x2301))
	}
	if c.sp != 0x2300 {
		t.Errorf("XTHL moved SP: %04X", c.sp)
	}
}

func TestLhldShld(t *testing.T) {
	c := NewCPU()
	run(t, c, []uint8{0x21, 0xCD, 0xAB, 0x22, 0x00, 0x23, 0x21, 0x00, 0x00, 0x2A, 0x00, 0x23, 0x76})
	if c.getHL() != 0xABCD {
		t.Errorf("SHLD/LHLD: HL=%04X, want ABCD", c.getHL())
	}
	if c.read(0x2300) != 0xCD || c.read(0x2301) != 0xAB {
		t.Errorf("SHLD bytes: %02X %02X", c.read(0x2300), c.read(0x2301))
	}
}

func TestMemoryMirror(t *testing.T) {
	c := NewCPU()
	c.write(0x6123, 0xAA)
	if c.read(0x2123) != 0xAA {
		t.Errorf("mirror write not visible at 2123")
	}
	// STA through the mirror
	c = NewCPU()
	run(t, c, []uint8{0x3E, 0x55, 0x32, 0x05, 0x64, 0x76}) // STA 6405
	if c.read(0x2405) != 0x55 {
		t.Errorf("STA 6405 not mirrored to 2405")
	}
}

func TestUnknownOpcodeHalts(t *testing.T) {
	c := NewCPU()
	c.Load([]uint8{0x08}, 0)
	if c.Step(NopTracer) {
		t.Error("Step should report halt on unknown opcode")
	}
	if !c.Halted() {
		t.Error("CPU not halted")
	}
	if c.icount != 0 {
		t.Errorf("unknown opcode retired: icount=%d", c.icount)
	}
}

func TestHltStops(t *testing.T) {
	c := NewCPU()
	c.Load([]uint8{0x76}, 0)
	if c.Step(NopTracer) {
		t.Error("Step should report halt after HLT")
	}
	if c.icount != 1 {
		t.Errorf("icount=%d, want 1", c.icount)
	}
}

func TestCycleAccounting(t *testing.T) {
	c := NewCPU()
	run(t, c, []uint8{0x00, 0x00, 0x76}) // NOP NOP HLT
	if c.cycle != 4+4+7 {
		t.Errorf("cycle=%d, want 15", c.cycle)
	}
	if c.icount != 3 {
		t.Errorf("icount=%d, want 3", c.icount)
	}
}

func TestConditionalCycleCosts(t *testing.T) {
	tests := []struct {
		name      string
		prog      []uint8
		z         uint8
		wantCycle uint64
		wantPC    uint16
	}{
		{"JNZ taken", []uint8{0xC2, 0x10, 0x00}, 0, 10, 0x10},
		{"JNZ not taken", []uint8{0xC2, 0x10, 0x00}, 1, 10, 0x03},
		{"CNZ taken", []uint8{0xC4, 0x10, 0x00}, 0, 17, 0x10},
		{"CNZ not taken", []uint8{0xC4, 0x10, 0x00}, 1, 11, 0x03},
		{"RNZ taken", []uint8{0xC0}, 0, 11, 0x1234},
		{"RNZ not taken", []uint8{0xC0}, 1, 5, 0x01},
	}
	for _, tc := range tests {
		c := NewCPU()
		c.sp = 0x2300
		c.write(0x2300, 0x34)
		c.write(0x2301, 0x12)
		c.flags.Z = tc.z
		c.Load(tc.prog, 0)
		c.Step(NopTracer)
		if c.cycle != tc.wantCycle {
			t.Errorf("%s: cycle=%d, want %d", tc.name, c.cycle, tc.wantCycle)
		}
		if c.pc != tc.wantPC {
			t.Errorf("%s: PC=%04X, want %04X", tc.name, c.pc, tc.wantPC)
		}
	}
}

func TestCallPushesReturnAddress(t *testing.T) {
	c := NewCPU()
	c.sp = 0x2400
	c.Load([]uint8{0xCD, 0x20, 0x00}, 0) // CALL 0020
	c.write(0x20, 0xC9)                  // RET
	c.Step(NopTracer)
	if c.pc != 0x20 {
		t.Fatalf("CALL: PC=%04X, want 0020", c.pc)
	}
	c.Step(NopTracer)
	if c.pc != 0x03 {
		t.Errorf("RET: PC=%04X, want 0003", c.pc)
	}
	if c.sp != 0x2400 {
		t.Errorf("SP=%04X, want 2400", c.sp)
	}
}

func TestRstVectors(t *testing.T) {
	for n := uint16(0); n < 8; n++ {
		c := NewCPU()
		c.sp = 0x2400
		op := uint8(0xC7 + n*8)
		c.write(0x0100, op)
		c.pc = 0x0100
		c.Step(NopTracer)
		if c.pc != n*8 {
			t.Errorf("RST %d: PC=%04X, want %04X", n, c.pc, n*8)
		}
		// return address is the byte after the RST
		if got := (uint16(c.read(c.sp+1)) << 8) | uint16(c.read(c.sp)); got != 0x0101 {
			t.Errorf("RST %d pushed %04X, want 0101", n, got)
		}
	}
}

func TestPchl(t *testing.T) {
	c := NewCPU()
	c.setHL(0x0150)
	c.Load([]uint8{0xE9}, 0)
	c.Step(NopTracer)
	if c.pc != 0x0150 {
		t.Errorf("PCHL: PC=%04X, want 0150", c.pc)
	}
}

func interruptTestCPU() *CPU {
	c := NewCPU()
	// LXI SP,2400; EI; JMP 0020 ... loop at 0020; RET handlers at 08/10
	c.Load([]uint8{0x31, 0x00, 0x24, 0xFB, 0xC3, 0x20, 0x00}, 0)
	c.write(0x0008, 0xC9)
	c.write(0x0010, 0xC9)
	c.write(0x0020, 0xC3)
	c.write(0x0021, 0x20)
	c.write(0x0022, 0x00)
	return c
}

func TestInterruptCadence(t *testing.T) {
	c := interruptTestCPU()

	var rst []string
	trace := func(c *CPU, format string, args ...interface{}) {
		line := fmt.Sprintf(format, args...)
		if strings.Contains(line, "RST") {
			rst = append(rst, line)
		}
	}

	steps := 20000
	for i := 0; i < steps; i++ {
		if !c.Step(trace) {
			t.Fatal("halted unexpectedly")
		}
	}

	if len(rst) < 10 {
		t.Fatalf("only %d injections over %d cycles", len(rst), c.cycle)
	}
	wakeups := c.nextWakeup/CyclesPerHalfFrame - 1
	if uint64(len(rst)) != wakeups {
		t.Errorf("injections=%d, wakeups passed=%d", len(rst), wakeups)
	}
	if c.icount != uint64(steps)+uint64(len(rst)) {
		t.Errorf("icount=%d, want %d program + %d injected", c.icount, steps, len(rst))
	}
	for i, line := range rst {
		want := "RST 1"
		if i%2 == 1 {
			want = "RST 2"
		}
		if !strings.Contains(line, want) {
			t.Fatalf("injection %d: %q, want %s", i, line, want)
		}
	}
}

func TestFirstInterruptAtHalfFrame(t *testing.T) {
	c := interruptTestCPU()
	for c.cycle < CyclesPerHalfFrame {
		c.Step(NopTracer)
	}
	if c.sp != 0x2400 {
		t.Fatalf("interrupt fired early: SP=%04X", c.sp)
	}

	var lines []string
	trace := func(c *CPU, format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	c.Step(trace)
	if len(lines) < 2 || !strings.Contains(lines[0], "RST 1") {
		t.Fatalf("first traced op after half frame: %q, want RST 1 injection", lines)
	}
}

func TestInterruptInjection(t *testing.T) {
	c := NewCPU()
	c.sp = 0x2400
	c.pc = 0x0150
	c.write(0x0008, 0xC9)
	c.Interrupt(0xCF)
	if c.pc != 0x0008 {
		t.Errorf("RST 1: PC=%04X, want 0008", c.pc)
	}
	if c.icount != 1 {
		t.Errorf("injected opcode not retired: icount=%d", c.icount)
	}
	// the interrupted PC is on the stack
	if got := (uint16(c.read(c.sp+1)) << 8) | uint16(c.read(c.sp)); got != 0x0150 {
		t.Errorf("pushed %04X, want 0150", got)
	}
}

func TestInterruptsDroppedWhileDisabled(t *testing.T) {
	c := NewCPU() // all NOPs, interrupts never enabled
	var rst int
	trace := func(c *CPU, format string, args ...interface{}) {
		if strings.Contains(fmt.Sprintf(format, args...), "RST") {
			rst++
		}
	}
	steps := 10000
	for i := 0; i < steps; i++ {
		c.Step(trace)
	}
	if rst != 0 {
		t.Errorf("%d interrupts delivered while disabled", rst)
	}
	if c.icount != uint64(steps) {
		t.Errorf("icount=%d, want %d", c.icount, steps)
	}
	// 40000 cycles pass the 16666 and 33332 wakeups; both drop
	if c.nextWakeup != 3*CyclesPerHalfFrame {
		t.Errorf("nextWakeup=%d, want %d", c.nextWakeup, 3*CyclesPerHalfFrame)
	}
	if c.nextIntOp != 0xCF {
		t.Errorf("nextIntOp=%02X after two drops, want CF", c.nextIntOp)
	}
}

func BenchmarkStep(b *testing.B) {
	c := NewCPU()
	for i := 0; i < b.N; i++ {
		c.Step(NopTracer)
	}
}
