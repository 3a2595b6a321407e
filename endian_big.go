//go:build mips || mips64 || ppc64 || s390x

package mrxhash

const bigEndian = true
