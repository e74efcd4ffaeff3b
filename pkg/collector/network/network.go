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

package network

import (
	"context"

	cnserrors "github.com/thiago-freire/DockerLab-SystemInfo/pkg/errors"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/provider"
	"github.com/thiago-freire/DockerLab-SystemInfo/pkg/units"
)

// Family tags an address record.
type Family string

// Reported families.
const (
	FamilyIPv4 Family = "ipv4"
	FamilyMAC  Family = "mac"
)

// Address is one (interface, address) pair. IPv4 records set IP and Netmask,
// MAC records set MAC and Mask.
type Address struct {
	Family    Family `json:"family" yaml:"family"`
	Interface string `json:"interface" yaml:"interface"`
	IP        string `json:"ip,omitempty" yaml:"ip,omitempty"`
	Netmask   string `json:"netmask,omitempty" yaml:"netmask,omitempty"`
	MAC       string `json:"mac,omitempty" yaml:"mac,omitempty"`
	Mask      string `json:"mask,omitempty" yaml:"mask,omitempty"`
	Broadcast string `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
}

// Info is the network record.
type Info struct {
	BytesSent string    `json:"bytesSent" yaml:"bytesSent"`
	BytesRecv string    `json:"bytesRecv" yaml:"bytesRecv"`
	Addresses []Address `json:"addresses" yaml:"addresses"`
}

// Collector reads interface addresses and host-wide traffic counters.
type Collector struct {
	Provider provider.NetworkProvider
}

// Collect returns every IPv4 and link-layer address in provider order.
// Addresses of other families are left out. Provider failures are returned.
func (c *Collector) Collect(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ifaces, err := c.Provider.InterfaceAddresses(ctx)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read interface addresses", err)
	}

	addrs := make([]Address, 0)
	for _, iface := range ifaces {
		for _, a := range iface.Addresses {
			if rec, ok := classify(iface.Name, a); ok {
				addrs = append(addrs, rec)
			}
		}
	}

	io, err := c.Provider.NetIOCounters(ctx)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to read network io counters", err)
	}

	return &Info{
		BytesSent: units.FormatBytes(io.BytesSent),
		BytesRecv: units.FormatBytes(io.BytesRecv),
		Addresses: addrs,
	}, nil
}

func classify(name string, a provider.Address) (Address, bool) {
	switch a.Family {
	case provider.FamilyIPv4:
		return Address{
			Family:    FamilyIPv4,
			Interface: name,
			IP:        a.Address,
			Netmask:   a.Netmask,
			Broadcast: a.Broadcast,
		}, true
	case provider.FamilyLinkLayer:
		return Address{
			Family:    FamilyMAC,
			Interface: name,
			MAC:       a.Address,
			Mask:      a.Netmask,
			Broadcast: a.Broadcast,
		}, true
	default:
		return Address{}, false
	}
}
