// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hwinfo

import (
	"context"
	"errors"
	"sort"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/bureau-foundation/hwcheck/lib/report"
)

// Network reports every interface with its addresses and cumulative
// traffic counters, sorted by name.
func (h *Host) Network(ctx context.Context) ([]report.NetworkInfo, error) {
	counters, countersErr := net.IOCountersWithContext(ctx, true)
	interfaces, interfacesErr := net.InterfacesWithContext(ctx)
	if countersErr != nil && interfacesErr != nil {
		return []report.NetworkInfo{}, report.Failure(report.DomainNetwork, "listing network interfaces",
			errors.Join(countersErr, interfacesErr))
	}

	result := mergeInterfaces(interfaces, counters)
	if countersErr != nil {
		return result, report.Failure(report.DomainNetwork, "reading interface counters", countersErr)
	}
	if interfacesErr != nil {
		return result, report.Failure(report.DomainNetwork, "reading interface addresses", interfacesErr)
	}
	return result, nil
}

// mergeInterfaces joins the interface list and counter list by name.
// An interface present in only one list is still reported.
func mergeInterfaces(interfaces []net.InterfaceStat, counters []net.IOCountersStat) []report.NetworkInfo {
	byName := make(map[string]*report.NetworkInfo)
	entry := func(name string) *report.NetworkInfo {
		if existing, ok := byName[name]; ok {
			return existing
		}
		created := &report.NetworkInfo{Name: name, Addresses: []string{}, Flags: []string{}}
		byName[name] = created
		return created
	}

	for _, iface := range interfaces {
		info := entry(iface.Name)
		info.MACAddress = iface.HardwareAddr
		info.MTU = iface.MTU
		for _, address := range iface.Addrs {
			info.Addresses = append(info.Addresses, address.Addr)
		}
		info.Flags = append(info.Flags, iface.Flags...)
	}
	for _, counter := range counters {
		info := entry(counter.Name)
		info.ReceivedBytes = counter.BytesRecv
		info.TransmittedBytes = counter.BytesSent
		info.PacketsReceived = counter.PacketsRecv
		info.PacketsTransmitted = counter.PacketsSent
		info.ErrorsIn = counter.Errin
		info.ErrorsOut = counter.Errout
	}

	result := make([]report.NetworkInfo, 0, len(byName))
	for _, info := range byName {
		result = append(result, *info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
