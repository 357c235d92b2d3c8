package i8080

import (
	"fmt"
	"os"
)

func noOp(c *CPU) {
}

func hlt(c *CPU) {
	c.halt = true
}

func ei(c *CPU) {
	c.intEnabled = true
}

func di(c *CPU) {
	c.intEnabled = false
}

// The ROM never reaches DAA; warn once and carry on.
func daa(c *CPU) {
	if !c.daaWarned {
		fmt.Fprintf(os.Stderr, "DAA not implemented (instruction %d, PC: %04X)\n",
			c.icount-1, c.pc-1)
		c.daaWarned = true
	}
}

func movBB(c *CPU) {
}

func movBC(c *CPU) {
	c.reg.B = c.reg.C
}

func movBD(c *CPU) {
	c.reg.B = c.reg.D
}

func movBE(c *CPU) {
	c.reg.B = c.reg.E
}

func movBH(c *CPU) {
	c.reg.B = c.reg.H
}

func movBL(c *CPU) {
	c.reg.B = c.reg.L
}

func movBM(c *CPU) {
	c.reg.B = c.read(c.getHL())
}

func movBA(c *CPU) {
	c.reg.B = c.reg.A
}

func movCB(c *CPU) {
	c.reg.C = c.reg.B
}

func movCC(c *CPU) {
}

func movCD(c *CPU) {
	c.reg.C = c.reg.D
}

func movCE(c *CPU) {
	c.reg.C = c.reg.E
}

func movCH(c *CPU) {
	c.reg.C = c.reg.H
}

func movCL(c *CPU) {
	c.reg.C = c.reg.L
}

func movCM(c *CPU) {
	c.reg.C = c.read(c.getHL())
}

func movCA(c *CPU) {
	c.reg.C = c.reg.A
}

func movDB(c *CPU) {
	c.reg.D = c.reg.B
}

func movDC(c *CPU) {
	c.reg.D = c.reg.C
}

func movDD(c *CPU) {
}

func movDE(c *CPU) {
	c.reg.D = c.reg.E
}

func movDH(c *CPU) {
	c.reg.D = c.reg.H
}

func movDL(c *CPU) {
	c.reg.D = c.reg.L
}

func movDM(c *CPU) {
	c.reg.D = c.read(c.getHL())
}

func movDA(c *CPU) {
	c.reg.D = c.reg.A
}

func movEB(c *CPU) {
	c.reg.E = c.reg.B
}

func movEC(c *CPU) {
	c.reg.E = c.reg.C
}

func movED(c *CPU) {
	c.reg.E = c.reg.D
}

func movEE(c *CPU) {
}

func movEH(c *CPU) {
	c.reg.E = c.reg.H
}

func movEL(c *CPU) {
	c.reg.E = c.reg.L
}

func movEM(c *CPU) {
	c.reg.E = c.read(c.getHL())
}

func movEA(c *CPU) {
	c.reg.E = c.reg.A
}

func movHB(c *CPU) {
	c.reg.H = c.reg.B
}

func movHC(c *CPU) {
	c.reg.H = c.reg.C
}

func movHD(c *CPU) {
	c.reg.H = c.reg.D
}

func movHE(c *CPU) {
	c.reg.H = c.reg.E
}

func movHH(c *CPU) {
}

func movHL(c *CPU) {
	c.reg.H = c.reg.L
}

func movHM(c *CPU) {
	c.reg.H = c.read(c.getHL())
}

func movHA(c *CPU) {
	c.reg.H = c.reg.A
}

func movLB(c *CPU) {
	c.reg.L = c.reg.B
}

func movLC(c *CPU) {
	c.reg.L = c.reg.C
}

func movLD(c *CPU) {
	c.reg.L = c.reg.D
}

func movLE(c *CPU) {
	c.reg.L = c.reg.E
}

func movLH(c *CPU) {
	c.reg.L = c.reg.H
}

func movLL(c *CPU) {
}

func movLM(c *CPU) {
	c.reg.L = c.read(c.getHL())
}

func movLA(c *CPU) {
	c.reg.L = c.reg.A
}

func movMB(c *CPU) {
	c.write(c.getHL(), c.reg.B)
}

func movMC(c *CPU) {
	c.write(c.getHL(), c.reg.C)
}

func movMD(c *CPU) {
	c.write(c.getHL(), c.reg.D)
}

func movME(c *CPU) {
	c.write(c.getHL(), c.reg.E)
}

func movMH(c *CPU) {
	c.write(c.getHL(), c.reg.H)
}

func movML(c *CPU) {
	c.write(c.getHL(), c.reg.L)
}

func movMA(c *CPU) {
	c.write(c.getHL(), c.reg.A)
}

func movAB(c *CPU) {
	c.reg.A = c.reg.B
}

func movAC(c *CPU) {
	c.reg.A = c.reg.C
}

func movAD(c *CPU) {
	c.reg.A = c.reg.D
}

func movAE(c *CPU) {
	c.reg.A = c.reg.E
}

func movAH(c *CPU) {
	c.reg.A = c.reg.H
}

func movAL(c *CPU) {
	c.reg.A = c.reg.L
}

func movAM(c *CPU) {
	c.reg.A = c.read(c.getHL())
}

func movAA(c *CPU) {
}

func mviB(c *CPU) {
	c.reg.B = c.fetchByte()
}

func mviC(c *CPU) {
	c.reg.C = c.fetchByte()
}

func mviD(c *CPU) {
	c.reg.D = c.fetchByte()
}

func mviE(c *CPU) {
	c.reg.E = c.fetchByte()
}

func mviH(c *CPU) {
	c.reg.H = c.fetchByte()
}

func mviL(c *CPU) {
	c.reg.L = c.fetchByte()
}

func mviA(c *CPU) {
	c.reg.A = c.fetchByte()
}

func mviM(c *CPU) {
	c.write(c.getHL(), c.fetchByte())
}

func lxiB(c *CPU) {
	c.setBC(c.fetchWord())
}

func lxiD(c *CPU) {
	c.setDE(c.fetchWord())
}

func lxiH(c *CPU) {
	c.setHL(c.fetchWord())
}

func lxiSP(c *CPU) {
	c.sp = c.fetchWord()
}

func lda(c *CPU) {
	c.reg.A = c.read(c.fetchWord())
}

func sta(c *CPU) {
	c.write(c.fetchWord(), c.reg.A)
}

func lhld(c *CPU) {
	addr := c.fetchWord()
	c.reg.L = c.read(addr)
	c.reg.H = c.read(addr + 1)
}

func shld(c *CPU) {
	addr := c.fetchWord()
	c.write(addr, c.reg.L)
	c.write(addr+1, c.reg.H)
}

func ldaxB(c *CPU) {
	c.reg.A = c.read(c.getBC())
}

func ldaxD(c *CPU) {
	c.reg.A = c.read(c.getDE())
}

func staxB(c *CPU) {
	c.write(c.getBC(), c.reg.A)
}

func staxD(c *CPU) {
	c.write(c.getDE(), c.reg.A)
}

func xchg(c *CPU) {
	c.reg.H, c.reg.D = c.reg.D, c.reg.H
	c.reg.L, c.reg.E = c.reg.E, c.reg.L
}

func xthl(c *CPU) {
	sp1 := c.read(c.sp)
	sp2 := c.read(c.sp + 1)
	c.write(c.sp, c.reg.L)
	c.write(c.sp+1, c.reg.H)
	c.reg.H = sp2
	c.reg.L = sp1
}

func sphl(c *CPU) {
	c.sp = c.getHL()
}

func pchl(c *CPU) {
	c.pc = c.getHL()
}

func pushB(c *CPU) {
	c.push(c.getBC())
}

func pushD(c *CPU) {
	c.push(c.getDE())
}

func pushH(c *CPU) {
	c.push(c.getHL())
}

func pushPSW(c *CPU) {
	c.push((uint16(c.reg.A) << 8) | uint16(c.flags.pack()))
}

func popB(c *CPU) {
	c.setBC(c.pop())
}

func popD(c *CPU) {
	c.setDE(c.pop())
}

func popH(c *CPU) {
	c.setHL(c.pop())
}

func popPSW(c *CPU) {
	val := c.pop()
	c.reg.A = uint8(val >> 8)
	c.flags.unpack(uint8(val))
}

func addB(c *CPU) {
	c.add(c.reg.B, 0)
}

func addC(c *CPU) {
	c.add(c.reg.C, 0)
}

func addD(c *CPU) {
	c.add(c.reg.D, 0)
}

func addE(c *CPU) {
	c.add(c.reg.E, 0)
}

func addH(c *CPU) {
	c.add(c.reg.H, 0)
}

func addL(c *CPU) {
	c.add(c.reg.L, 0)
}

func addM(c *CPU) {
	c.add(c.read(c.getHL()), 0)
}

func addA(c *CPU) {
	c.add(c.reg.A, 0)
}

func adi(c *CPU) {
	c.add(c.fetchByte(), 0)
}

func adcB(c *CPU) {
	c.add(c.reg.B, c.flags.CY)
}

func adcC(c *CPU) {
	c.add(c.reg.C, c.flags.CY)
}

func adcD(c *CPU) {
	c.add(c.reg.D, c.flags.CY)
}

func adcE(c *CPU) {
	c.add(c.reg.E, c.flags.CY)
}

func adcH(c *CPU) {
	c.add(c.reg.H, c.flags.CY)
}

func adcL(c *CPU) {
	c.add(c.reg.L, c.flags.CY)
}

func adcM(c *CPU) {
	c.add(c.read(c.getHL()), c.flags.CY)
}

func adcA(c *CPU) {
	c.add(c.reg.A, c.flags.CY)
}

func aci(c *CPU) {
	c.add(c.fetchByte(), c.flags.CY)
}

func subB(c *CPU) {
	c.sub(c.reg.B, 0)
}

func subC(c *CPU) {
	c.sub(c.reg.C, 0)
}

func subD(c *CPU) {
	c.sub(c.reg.D, 0)
}

func subE(c *CPU) {
	c.sub(c.reg.E, 0)
}

func subH(c *CPU) {
	c.sub(c.reg.H, 0)
}

func subL(c *CPU) {
	c.sub(c.reg.L, 0)
}

func subM(c *CPU) {
	c.sub(c.read(c.getHL()), 0)
}

func subA(c *CPU) {
	c.sub(c.reg.A, 0)
}

func sui(c *CPU) {
	c.sub(c.fetchByte(), 0)
}

func sbbB(c *CPU) {
	c.sub(c.reg.B, c.flags.CY)
}

func sbbC(c *CPU) {
	c.sub(c.reg.C, c.flags.CY)
}

func sbbD(c *CPU) {
	c.sub(c.reg.D, c.flags.CY)
}

func sbbE(c *CPU) {
	c.sub(c.reg.E, c.flags.CY)
}

func sbbH(c *CPU) {
	c.sub(c.reg.H, c.flags.CY)
}

func sbbL(c *CPU) {
	c.sub(c.reg.L, c.flags.CY)
}

func sbbM(c *CPU) {
	c.sub(c.read(c.getHL()), c.flags.CY)
}

func sbbA(c *CPU) {
	c.sub(c.reg.A, c.flags.CY)
}

func sbi(c *CPU) {
	c.sub(c.fetchByte(), c.flags.CY)
}

func inrB(c *CPU) {
	c.reg.B = c.inr(c.reg.B)
}

func inrC(c *CPU) {
	c.reg.C = c.inr(c.reg.C)
}

func inrD(c *CPU) {
	c.reg.D = c.inr(c.reg.D)
}

func inrE(c *CPU) {
	c.reg.E = c.inr(c.reg.E)
}

func inrH(c *CPU) {
	c.reg.H = c.inr(c.reg.H)
}

func inrL(c *CPU) {
	c.reg.L = c.inr(c.reg.L)
}

func inrM(c *CPU) {
	c.write(c.getHL(), c.inr(c.read(c.getHL())))
}

func inrA(c *CPU) {
	c.reg.A = c.inr(c.reg.A)
}

func dcrB(c *CPU) {
	c.reg.B = c.dcr(c.reg.B)
}

func dcrC(c *CPU) {
	c.reg.C = c.dcr(c.reg.C)
}

func dcrD(c *CPU) {
	c.reg.D = c.dcr(c.reg.D)
}

func dcrE(c *CPU) {
	c.reg.E = c.dcr(c.reg.E)
}

func dcrH(c *CPU) {
	c.reg.H = c.dcr(c.reg.H)
}

func dcrL(c *CPU) {
	c.reg.L = c.dcr(c.reg.L)
}

func dcrM(c *CPU) {
	c.write(c.getHL(), c.dcr(c.read(c.getHL())))
}

func dcrA(c *CPU) {
	c.reg.A = c.dcr(c.reg.A)
}

func inxB(c *CPU) {
	c.setBC(c.getBC() + 1)
}

func inxD(c *CPU) {
	c.setDE(c.getDE() + 1)
}

func inxH(c *CPU) {
	c.setHL(c.getHL() + 1)
}

func inxSP(c *CPU) {
	c.sp += 1
}

func dcxB(c *CPU) {
	c.setBC(c.getBC() - 1)
}

func dcxD(c *CPU) {
	c.setDE(c.getDE() - 1)
}

func dcxH(c *CPU) {
	c.setHL(c.getHL() - 1)
}

func dcxSP(c *CPU) {
	c.sp -= 1
}

func dadB(c *CPU) {
	c.dad(c.getBC())
}

func dadD(c *CPU) {
	c.dad(c.getDE())
}

func dadH(c *CPU) {
	c.dad(c.getHL())
}

func dadSP(c *CPU) {
	c.dad(c.sp)
}

func anaB(c *CPU) {
	c.and(c.reg.B)
}

func anaC(c *CPU) {
	c.and(c.reg.C)
}

func anaD(c *CPU) {
	c.and(c.reg.D)
}

func anaE(c *CPU) {
	c.and(c.reg.E)
}

func anaH(c *CPU) {
	c.and(c.reg.H)
}

func anaL(c *CPU) {
	c.and(c.reg.L)
}

func anaM(c *CPU) {
	c.and(c.read(c.getHL()))
}

func anaA(c *CPU) {
	c.and(c.reg.A)
}

func ani(c *CPU) {
	c.and(c.fetchByte())
}

func xraB(c *CPU) {
	c.xor(c.reg.B)
}

func xraC(c *CPU) {
	c.xor(c.reg.C)
}

func xraD(c *CPU) {
	c.xor(c.reg.D)
}

func xraE(c *CPU) {
	c.xor(c.reg.E)
}

func xraH(c *CPU) {
	c.xor(c.reg.H)
}

func xraL(c *CPU) {
	c.xor(c.reg.L)
}

func xraM(c *CPU) {
	c.xor(c.read(c.getHL()))
}

func xraA(c *CPU) {
	c.xor(c.reg.A)
}

func xri(c *CPU) {
	c.xor(c.fetchByte())
}

func oraB(c *CPU) {
	c.or(c.reg.B)
}

func oraC(c *CPU) {
	c.or(c.reg.C)
}

func oraD(c *CPU) {
	c.or(c.reg.D)
}

func oraE(c *CPU) {
	c.or(c.reg.E)
}

func oraH(c *CPU) {
	c.or(c.reg.H)
}

func oraL(c *CPU) {
	c.or(c.reg.L)
}

func oraM(c *CPU) {
	c.or(c.read(c.getHL()))
}

func oraA(c *CPU) {
	c.or(c.reg.A)
}

func ori(c *CPU) {
	c.or(c.fetchByte())
}

func cmpB(c *CPU) {
	c.cmp(c.reg.B)
}

func cmpC(c *CPU) {
	c.cmp(c.reg.C)
}

func cmpD(c *CPU) {
	c.cmp(c.reg.D)
}

func cmpE(c *CPU) {
	c.cmp(c.reg.E)
}

func cmpH(c *CPU) {
	c.cmp(c.reg.H)
}

func cmpL(c *CPU) {
	c.cmp(c.reg.L)
}

func cmpM(c *CPU) {
	c.cmp(c.read(c.getHL()))
}

func cmpA(c *CPU) {
	c.cmp(c.reg.A)
}

func cpi(c *CPU) {
	c.cmp(c.fetchByte())
}

func rlc(c *CPU) {
	c.flags.CY = c.reg.A >> 7
	c.reg.A = (c.reg.A << 1) | c.flags.CY
}

func rrc(c *CPU) {
	c.flags.CY = c.reg.A & 1
	c.reg.A = (c.reg.A >> 1) | (c.flags.CY << 7)
}

func ral(c *CPU) {
	cy := c.flags.CY
	c.flags.CY = c.reg.A >> 7
	c.reg.A = (c.reg.A << 1) | cy
}

func rar(c *CPU) {
	cy := c.flags.CY
	c.flags.CY = c.reg.A & 1
	c.reg.A = (c.reg.A >> 1) | (cy << 7)
}

func cma(c *CPU) {
	c.reg.A = ^c.reg.A
}

func cmc(c *CPU) {
	c.flags.CY ^= 1
}

func stc(c *CPU) {
	c.flags.CY = 1
}

func jmp(c *CPU) {
	c.pc = c.fetchWord()
}

func jmpCond(c *CPU, cond bool) {
	addr := c.fetchWord()
	if cond {
		c.pc = addr
	}
}

func jnz(c *CPU) {
	jmpCond(c, c.flags.Z == 0)
}

func jz(c *CPU) {
	jmpCond(c, c.flags.Z == 1)
}

func jnc(c *CPU) {
	jmpCond(c, c.flags.CY == 0)
}

func jc(c *CPU) {
	jmpCond(c, c.flags.CY == 1)
}

func jpo(c *CPU) {
	jmpCond(c, c.flags.P == 0)
}

func jpe(c *CPU) {
	jmpCond(c, c.flags.P == 1)
}

func jp(c *CPU) {
	jmpCond(c, c.flags.S == 0)
}

func jm(c *CPU) {
	jmpCond(c, c.flags.S == 1)
}

func call(c *CPU) {
	addr := c.fetchWord()
	c.push(c.pc)
	c.pc = addr
}

func callCond(c *CPU, cond bool) {
	addr := c.fetchWord()
	if cond {
		c.cycle += 6
		c.push(c.pc)
		c.pc = addr
	}
}

func cnz(c *CPU) {
	callCond(c, c.flags.Z == 0)
}

func cz(c *CPU) {
	callCond(c, c.flags.Z == 1)
}

func cnc(c *CPU) {
	callCond(c, c.flags.CY == 0)
}

func cc(c *CPU) {
	callCond(c, c.flags.CY == 1)
}

func cpo(c *CPU) {
	callCond(c, c.flags.P == 0)
}

func cpe(c *CPU) {
	callCond(c, c.flags.P == 1)
}

func cp(c *CPU) {
	callCond(c, c.flags.S == 0)
}

func cm(c *CPU) {
	callCond(c, c.flags.S == 1)
}

func ret(c *CPU) {
	c.pc = c.pop()
}

func retCond(c *CPU, cond bool) {
	if cond {
		c.cycle += 6
		c.pc = c.pop()
	}
}

func rnz(c *CPU) {
	retCond(c, c.flags.Z == 0)
}

func rz(c *CPU) {
	retCond(c, c.flags.Z == 1)
}

func rnc(c *CPU) {
	retCond(c, c.flags.CY == 0)
}

func rc(c *CPU) {
	retCond(c, c.flags.CY == 1)
}

func rpo(c *CPU) {
	retCond(c, c.flags.P == 0)
}

func rpe(c *CPU) {
	retCond(c, c.flags.P == 1)
}

func rp(c *CPU) {
	retCond(c, c.flags.S == 0)
}

func rm(c *CPU) {
	retCond(c, c.flags.S == 1)
}

func callRst(c *CPU, addr uint16) {
	c.push(c.pc)
	c.pc = addr
}

func rst0(c *CPU) {
	callRst(c, 0x00)
}

func rst1(c *CPU) {
	callRst(c, 0x08)
}

func rst2(c *CPU) {
	callRst(c, 0x10)
}

func rst3(c *CPU) {
	callRst(c, 0x18)
}

func rst4(c *CPU) {
	callRst(c, 0x20)
}

func rst5(c *CPU) {
	callRst(c, 0x28)
}

func rst6(c *CPU) {
	callRst(c, 0x30)
}

func rst7(c *CPU) {
	callRst(c, 0x38)
}

func in(c *CPU) {
	port := c.fetchByte()
	c.reg.A = c.portIn(port)
}

func out(c *CPU) {
	port := c.fetchByte()
	c.portOut(port, c.reg.A)
}

var INSTRUCTIONS = [256]func(*CPU){
	0x00: noOp,
	0x01: lxiB,
	0x02: staxB,
	0x03: inxB,
	0x04: inrB,
	0x05: dcrB,
	0x06: mviB,
	0x07: rlc,
	0x09: dadB,
	0x0A: ldaxB,
	0x0B: dcxB,
	0x0C: inrC,
	0x0D: dcrC,
	0x0E: mviC,
	0x0F: rrc,
	0x11: lxiD,
	0x12: staxD,
	0x13: inxD,
	0x14: inrD,
	0x15: dcrD,
	0x16: mviD,
	0x17: ral,
	0x19: dadD,
	0x1A: ldaxD,
	0x1B: dcxD,
	0x1C: inrE,
	0x1D: dcrE,
	0x1E: mviE,
	0x1F: rar,
	0x21: lxiH,
	0x22: shld,
	0x23: inxH,
	0x24: inrH,
	0x25: dcrH,
	0x26: mviH,
	0x27: daa,
	0x29: dadH,
	0x2A: lhld,
	0x2B: dcxH,
	0x2C: inrL,
	0x2D: dcrL,
	0x2E: mviL,
	0x2F: cma,
	0x31: lxiSP,
	0x32: sta,
	0x33: inxSP,
	0x34: inrM,
	0x35: dcrM,
	0x36: mviM,
	0x37: stc,
	0x39: dadSP,
	0x3A: lda,
	0x3B: dcxSP,
	0x3C: inrA,
	0x3D: dcrA,
	0x3E: mviA,
	0x3F: cmc,
	0x40: movBB,
	0x41: movBC,
	0x42: movBD,
	0x43: movBE,
	0x44: movBH,
	0x45: movBL,
	0x46: movBM,
	0x47: movBA,
	0x48: movCB,
	0x49: movCC,
	0x4A: movCD,
	0x4B: movCE,
	0x4C: movCH,
	0x4D: movCL,
	0x4E: movCM,
	0x4F: movCA,
	0x50: movDB,
	0x51: movDC,
	0x52: movDD,
	0x53: movDE,
	0x54: movDH,
	0x55: movDL,
	0x56: movDM,
	0x57: movDA,
	0x58: movEB,
	0x59: movEC,
	0x5A: movED,
	0x5B: movEE,
	0x5C: movEH,
	0x5D: movEL,
	0x5E: movEM,
	0x5F: movEA,
	0x60: movHB,
	0x61: movHC,
	0x62: movHD,
	0x63: movHE,
	0x64: movHH,
	0x65: movHL,
	0x66: movHM,
	0x67: movHA,
	0x68: movLB,
	0x69: movLC,
	0x6A: movLD,
	0x6B: movLE,
	0x6C: movLH,
	0x6D: movLL,
	0x6E: movLM,
	0x6F: movLA,
	0x70: movMB,
	0x71: movMC,
	0x72: movMD,
	0x73: movME,
	0x74: movMH,
	0x75: movML,
	0x76: hlt,
	0x77: movMA,
	0x78: movAB,
	0x79: movAC,
	0x7A: movAD,
	0x7B: movAE,
	0x7C: movAH,
	0x7D: movAL,
	0x7E: movAM,
	0x7F: movAA,
	0x80: addB,
	0x81: addC,
	0x82: addD,
	0x83: addE,
	0x84: addH,
	0x85: addL,
	0x86: addM,
	0x87: addA,
	0x88: adcB,
	0x89: adcC,
	0x8A: adcD,
	0x8B: adcE,
	0x8C: adcH,
	0x8D: adcL,
	0x8E: adcM,
	0x8F: adcA,
	0x90: subB,
	0x91: subC,
	0x92: subD,
	0x93: subE,
	0x94: subH,
	0x95: subL,
	0x96: subM,
	0x97: subA,
	0x98: sbbB,
	0x99: sbbC,
	0x9A: sbbD,
	0x9B: sbbE,
	0x9C: sbbH,
	0x9D: sbbL,
	0x9E: sbbM,
	0x9F: sbbA,
	0xA0: anaB,
	0xA1: anaC,
	0xA2: anaD,
	0xA3: anaE,
	0xA4: anaH,
	0xA5: anaL,
	0xA6: anaM,
	0xA7: anaA,
	0xA8: xraB,
	0xA9: xraC,
	0xAA: xraD,
	0xAB: xraE,
	0xAC: xraH,
	0xAD: xraL,
	0xAE: xraM,
	0xAF: xraA,
	0xB0: oraB,
	0xB1: oraC,
	0xB2: oraD,
	0xB3: oraE,
	0xB4: oraH,
	0xB5: oraL,
	0xB6: oraM,
	0xB7: oraA,
	0xB8: cmpB,
	0xB9: cmpC,
	0xBA: cmpD,
	0xBB: cmpE,
	0xBC: cmpH,
	0xBD: cmpL,
	0xBE: cmpM,
	0xBF: cmpA,
	0xC0: rnz,
	0xC1: popB,
	0xC2: jnz,
	0xC3: jmp,
	0xC4: cnz,
	0xC5: pushB,
	0xC6: adi,
	0xC7: rst0,
	0xC8: rz,
	0xC9: ret,
	0xCA: jz,
	0xCC: cz,
	0xCD: call,
	0xCE: aci,
	0xCF: rst1,
	0xD0: rnc,
	0xD1: popD,
	0xD2: jnc,
	0xD3: out,
	0xD4: cnc,
	0xD5: pushD,
	0xD6: sui,
	0xD7: rst2,
	0xD8: rc,
	0xDA: jc,
	0xDB: in,
	0xDC: cc,
	0xDE: sbi,
	0xDF: rst3,
	0xE0: rpo,
	0xE1: popH,
	0xE2: jpo,
	0xE3: xthl,
	0xE4: cpo,
	0xE5: pushH,
	0xE6: ani,
	0xE7: rst4,
	0xE8: rpe,
	0xE9: pchl,
	0xEA: jpe,
	0xEB: xchg,
	0xEC: cpe,
	0xEE: xri,
	0xEF: rst5,
	0xF0: rp,
	0xF1: popPSW,
	0xF2: jp,
	0xF3: di,
	0xF4: cp,
	0xF5: pushPSW,
	0xF6: ori,
	0xF7: rst6,
	0xF8: rm,
	0xF9: sphl,
	0xFA: jm,
	0xFB: ei,
	0xFC: cm,
	0xFE: cpi,
	0xFF: rst7,
}
