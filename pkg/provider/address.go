// Copyright (c) 2025, The DockerLab-SystemInfo Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package provider

import (
	"net/netip"
	"strings"
)

const macBroadcast = "ff:ff:ff:ff:ff:ff"

// ipAddress converts a CIDR string (as reported by the kernel) into an
// Address with its netmask and, for IPv4 on broadcast-capable links, the
// directed broadcast address. Bare addresses are accepted as host routes.
func ipAddress(cidr string, broadcast bool) Address {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		addr, aerr := netip.ParseAddr(cidr)
		if aerr != nil {
			return Address{Family: FamilyOther, Address: cidr}
		}
		prefix = netip.PrefixFrom(addr, addr.BitLen())
	}

	addr := prefix.Addr()
	res := Address{Address: addr.String()}

	switch {
	case addr.Is4() || addr.Is4In6():
		bits := prefix.Bits()
		if addr.Is4In6() {
			bits = max(bits-96, 0)
		}
		addr = addr.Unmap()
		prefix = netip.PrefixFrom(addr, bits)
		res.Family = FamilyIPv4
		res.Address = addr.String()
		res.Netmask = netmask(prefix.Bits(), 32).String()
		if broadcast && prefix.Bits() < 32 {
			res.Broadcast = lastAddr(prefix).String()
		}
	default:
		res.Family = FamilyIPv6
		res.Netmask = netmask(prefix.Bits(), 128).String()
	}
	return res
}

func linkLayerAddress(mac string, broadcast bool) Address {
	a := Address{Family: FamilyLinkLayer, Address: strings.ToLower(mac)}
	if broadcast {
		a.Broadcast = macBroadcast
	}
	return a
}

// netmask builds the address whose first ones bits are set.
func netmask(ones, bits int) netip.Addr {
	b := make([]byte, bits/8)
	for i := range b {
		switch {
		case ones >= 8:
			b[i] = 0xff
			ones -= 8
		case ones > 0:
			b[i] = byte(0xff << (8 - ones))
			ones = 0
		}
	}
	addr, _ := netip.AddrFromSlice(b)
	return addr
}

// lastAddr returns the highest address within p.
func lastAddr(p netip.Prefix) netip.Addr {
	b := p.Masked().Addr().AsSlice()
	host := len(b)*8 - p.Bits()
	for i := len(b) - 1; i >= 0 && host > 0; i-- {
		if host >= 8 {
			b[i] = 0xff
			host -= 8
			continue
		}
		b[i] |= byte(1<<host - 1)
		host = 0
	}
	addr, _ := netip.AddrFromSlice(b)
	return addr
}
