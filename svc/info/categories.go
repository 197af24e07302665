// Copyright 2026 NetApp, Inc. All Rights Reserved.

package info

import (
	"sort"
	"strings"

	"github.com/netapp/svcinfo/utils/errors"
)

// SubsetAll requests every category that can be gathered without an object name.
const SubsetAll = "all"

// Category describes one kind of object the array can list.
type Category struct {
	// Name is the gather_subset value selecting the category.
	Name string
	// ResultKey is the key the objects are stored under in the result.
	ResultKey string
	// Command is the REST listing command.
	Command string
	// MinCodeLevel is the earliest code level supporting Command; empty means always supported.
	MinCodeLevel string
	// Single is set for commands that describe one object (lssystem) rather than a list.
	Single bool
	// ObjectNameOption, when set, passes the object name as this option instead of as an argument.
	ObjectNameOption string
	// RequiresObjectName categories cannot be listed without an object name.
	RequiresObjectName bool
}

const systemCategoryName = "system"

// categories is ordered; the order is the fetch order and the order of keys in the result.
var categories = []Category{
	{Name: "vol", ResultKey: "Volume", Command: "lsvdisk"},
	{Name: "pool", ResultKey: "Pool", Command: "lsmdiskgrp"},
	{Name: "node", ResultKey: "Node", Command: "lsnode"},
	{Name: "iog", ResultKey: "IOGroup", Command: "lsiogrp"},
	{Name: "host", ResultKey: "Host", Command: "lshost"},
	{Name: "hostvdiskmap", ResultKey: "HostVdiskMap", Command: "lshostvdiskmap"},
	{Name: "vdiskhostmap", ResultKey: "VdiskHostMap", Command: "lsvdiskhostmap"},
	{Name: "hc", ResultKey: "HostCluster", Command: "lshostcluster"},
	{Name: "fc", ResultKey: "FCConnectivitie", Command: "lsfabric"},
	{Name: "fcport", ResultKey: "FCPort", Command: "lsportfc"},
	{Name: "targetportfc", ResultKey: "TargetPortFC", Command: "lstargetportfc"},
	{Name: "iscsiport", ResultKey: "iSCSIPort", Command: "lsportip"},
	{Name: "fcmap", ResultKey: "FCMap", Command: "lsfcmap"},
	{Name: "rcrelationship", ResultKey: "RemoteCopy", Command: "lsrcrelationship"},
	{Name: "fcconsistgrp", ResultKey: "FCConsistgrp", Command: "lsfcconsistgrp"},
	{Name: "rcconsistgrp", ResultKey: "RCConsistgrp", Command: "lsrcconsistgrp"},
	{Name: "vdiskcopy", ResultKey: "VdiskCopy", Command: "lsvdiskcopy"},
	{Name: "array", ResultKey: "Array", Command: "lsarray"},
	{Name: systemCategoryName, ResultKey: "System", Command: "lssystem", Single: true},
	{Name: "cloudaccount", ResultKey: "CloudAccount", Command: "lscloudaccount"},
	{Name: "cloudaccountusage", ResultKey: "CloudAccountUsage", Command: "lscloudaccountusage"},
	{Name: "cloudimportcandidate", ResultKey: "CloudImportCandidate", Command: "lscloudaccountimportcandidate"},
	{Name: "ldapserver", ResultKey: "LdapServer", Command: "lsldapserver"},
	{Name: "drive", ResultKey: "Drive", Command: "lsdrive"},
	{Name: "user", ResultKey: "User", Command: "lsuser"},
	{Name: "usergroup", ResultKey: "UserGrp", Command: "lsusergrp"},
	{Name: "ownershipgroup", ResultKey: "Ownershipgroup", Command: "lsownershipgroup"},
	{Name: "partnership", ResultKey: "Partnership", Command: "lspartnership"},
	{Name: "replicationpolicy", ResultKey: "ReplicationPolicy", Command: "lsreplicationpolicy", MinCodeLevel: "8.5.2.0"},
	{Name: "cloudbackup", ResultKey: "CloudBackup", Command: "lsvolumebackup"},
	{
		Name: "cloudbackupgeneration", ResultKey: "CloudBackupGeneration", Command: "lsvolumebackupgeneration",
		ObjectNameOption: "volume", RequiresObjectName: true,
	},
	{Name: "snapshotpolicy", ResultKey: "SnapshotPolicy", Command: "lssnapshotpolicy", MinCodeLevel: "8.5.1.0"},
	{Name: "snapshotschedule", ResultKey: "SnapshotSchedule", Command: "lssnapshotschedule", MinCodeLevel: "8.5.1.0"},
	{Name: "volumegroup", ResultKey: "Volumegroup", Command: "lsvolumegroup", MinCodeLevel: "8.5.2.0"},
	{
		Name: "volumegroupsnapshotpolicy", ResultKey: "VolumegroupSnapshotPolicy",
		Command: "lsvolumegroupsnapshotpolicy", MinCodeLevel: "8.5.1.0",
	},
	{Name: "snapshot", ResultKey: "Snapshot", Command: "lsvolumesnapshot", MinCodeLevel: "8.5.2.0"},
	{Name: "dnsserver", ResultKey: "DnsServer", Command: "lsdnsserver"},
	{Name: "systemcertificate", ResultKey: "SystemCert", Command: "lssystemcert"},
	{Name: "truststore", ResultKey: "TrustStore", Command: "lstruststore", MinCodeLevel: "8.4.2.0"},
	{Name: "sra", ResultKey: "Sra", Command: "lssra"},
	{Name: "syslogserver", ResultKey: "SysLogServer", Command: "lssyslogserver"},
	{Name: "emailserver", ResultKey: "EmailServer", Command: "lsemailserver"},
	{Name: "emailuser", ResultKey: "EmailUser", Command: "lsemailuser"},
	{Name: "provisioningpolicy", ResultKey: "ProvisioningPolicy", Command: "lsprovisioningpolicy", MinCodeLevel: "8.4.1.0"},
	{Name: "volumegroupsnapshot", ResultKey: "VolumegroupSnapshot", Command: "lsvolumegroupsnapshot", MinCodeLevel: "8.6.0.0"},
	{Name: "callhome", ResultKey: "CallHome", Command: "lscloudcallhome"},
	{Name: "ip", ResultKey: "IP", Command: "lsip"},
	{Name: "portset", ResultKey: "Portset", Command: "lsportset"},
	{Name: "safeguardedpolicy", ResultKey: "SafeguardedPolicy", Command: "lssafeguardedpolicy", MinCodeLevel: "8.4.2.0"},
	{
		Name: "safeguardedschedule", ResultKey: "SafeguardedSchedule", Command: "lssafeguardedschedule",
		MinCodeLevel: "8.4.2.0",
	},
	{Name: "mdisk", ResultKey: "Mdisk", Command: "lsmdisk"},
	{Name: "eventlog", ResultKey: "EventLog", Command: "lseventlog"},
	{Name: "partition", ResultKey: "Partition", Command: "lspartition", MinCodeLevel: "8.6.1.0"},
}

var categoryIndex = func() map[string]int {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.Name] = i
	}
	return index
}()

// Categories returns a copy of the category registry in fetch order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// LookupCategory returns the category selected by a gather_subset value.
func LookupCategory(name string) (Category, bool) {
	i, ok := categoryIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Category{}, false
	}
	return categories[i], true
}

// SubsetNames returns every valid gather_subset value, sorted.
func SubsetNames() []string {
	names := make([]string, 0, len(categories)+1)
	for _, c := range categories {
		names = append(names, c.Name)
	}
	names = append(names, SubsetAll)
	sort.Strings(names)
	return names
}

// ParseSubset turns gather_subset values into categories. Values may be comma-separated; they
// are trimmed, lower-cased and de-duplicated. No values, or "all", selects every category that
// does not require an object name. The result is in fetch order.
func ParseSubset(values []string) ([]Category, error) {
	requested := make(map[int]bool)
	all := false
	var unknown []string

	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			switch {
			case name == "":
				continue
			case name == SubsetAll:
				all = true
			default:
				i, ok := categoryIndex[name]
				if !ok {
					unknown = append(unknown, name)
					continue
				}
				requested[i] = true
			}
		}
	}

	if len(unknown) > 0 {
		return nil, errors.InvalidInputError("unsupported gather_subset value(s): %s; valid values are: %s",
			strings.Join(unknown, ", "), strings.Join(SubsetNames(), ", "))
	}

	if len(requested) == 0 {
		all = true
	}

	selected := make([]Category, 0, len(categories))
	for i, c := range categories {
		if requested[i] || (all && !c.RequiresObjectName) {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
