// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "version",
			Usage:     "display medblock-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
		{
			Name:      "stats",
			Usage:     "count outstanding consents and open sessions",
			ArgsUsage: " ",
			Action:    runStats,
		},

		// patients
		{
			Name:      "bind",
			Usage:     "bind an actor to the owner derived from a NIK",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				actorFlag,
				cli.StringFlag{
					Name:  "nik, n",
					Value: "",
					Usage: "*national identity `NUMBER`",
				},
			},
			Action: runBind,
		},
		{
			Name:      "unbind",
			Usage:     "remove the binding of an actor",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{actorFlag},
			Action:    runUnbind,
		},
		{
			Name:      "owner-of",
			Usage:     "show the owner bound to an actor",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{actorFlag},
			Action:    runOwnerOf,
		},

		// records
		{
			Name:      "add",
			Usage:     "add a record, issuer and record are generated if omitted",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: " issuer `UUID`",
				},
				cli.StringFlag{
					Name:  "record, r",
					Value: "",
					Usage: " record `UUID`",
				},
				fieldFlag,
			},
			Action: runAdd,
		},
		{
			Name:      "update",
			Usage:     "overwrite or add fragments of an existing record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag, issuerFlag, recordFlag, fieldFlag},
			Action:    runUpdate,
		},
		{
			Name:      "read",
			Usage:     "read one record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag, issuerFlag, recordFlag},
			Action:    runRead,
		},
		{
			Name:      "remove",
			Usage:     "remove one record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag, issuerFlag, recordFlag},
			Action:    runRemove,
		},
		{
			Name:      "list",
			Usage:     "list record headers of an owner or an issuer",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+record owner `HEX`",
				},
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: "+issuer `UUID`",
				},
				pageFlag,
				limitFlag,
			},
			Action: runList,
		},

		// consent
		{
			Name:      "consent-generate",
			Usage:     "generate a consent code for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runConsentGenerate,
		},
		{
			Name:      "consent-show",
			Usage:     "show the state of a consent code",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{codeFlag},
			Action:    runConsentShow,
		},
		{
			Name:      "consent-list",
			Usage:     "list outstanding codes of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runConsentList,
		},
		{
			Name:      "consent-revoke",
			Usage:     "revoke a consent code and its session",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{codeFlag},
			Action:    runConsentRevoke,
		},
		{
			Name:      "claim",
			Usage:     "claim a consent code, starting a session",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{codeFlag, actorFlag},
			Action:    runClaim,
		},
		{
			Name:      "resolve",
			Usage:     "show the owner of a session",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{sessionFlag, actorFlag},
			Action:    runResolve,
		},
		{
			Name:      "finish",
			Usage:     "finish a session",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{sessionFlag, actorFlag},
			Action:    runFinish,
		},
		{
			Name:      "sessions-of",
			Usage:     "list open sessions of an actor",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{actorFlag},
			Action:    runSessionsOf,
		},
		{
			Name:      "session-read",
			Usage:     "read a record through a session",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{sessionFlag, actorFlag, issuerFlag, recordFlag},
			Action:    runSessionRead,
		},
		{
			Name:      "session-list",
			Usage:     "list records through a session",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{sessionFlag, actorFlag, pageFlag, limitFlag},
			Action:    runSessionList,
		},

		// groups
		{
			Name:      "group-create",
			Usage:     "create a group led by an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*group `NAME`",
				},
				cli.StringFlag{
					Name:  "leader, L",
					Value: "",
					Usage: "*leader owner `HEX`",
				},
			},
			Action: runGroupCreate,
		},
		{
			Name:      "group-add",
			Usage:     "add a member to a group",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				groupFlag,
				cli.StringFlag{
					Name:  "member, m",
					Value: "",
					Usage: "*member owner `HEX`",
				},
				cli.StringFlag{
					Name:  "relation, R",
					Value: "other",
					Usage: " relation to the leader `RELATION`",
				},
			},
			Action: runGroupAdd,
		},
		{
			Name:      "group-remove",
			Usage:     "remove a member from a group",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				groupFlag,
				cli.StringFlag{
					Name:  "member, m",
					Value: "",
					Usage: "*member owner `HEX`",
				},
			},
			Action: runGroupRemove,
		},
		{
			Name:      "group-leader",
			Usage:     "transfer leadership to another member",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				groupFlag,
				cli.StringFlag{
					Name:  "leader, L",
					Value: "",
					Usage: "*new leader owner `HEX`",
				},
			},
			Action: runGroupLeader,
		},
		{
			Name:      "group-dissolve",
			Usage:     "delete a group",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{groupFlag},
			Action:    runGroupDissolve,
		},
		{
			Name:      "group-show",
			Usage:     "show a group",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{groupFlag},
			Action:    runGroupShow,
		},
		{
			Name:      "group-of",
			Usage:     "list groups of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runGroupOf,
		},

		// grants
		{
			Name:      "grant",
			Usage:     "let another group member read the records of the actor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				actorFlag,
				groupFlag,
				cli.StringFlag{
					Name:  "grantee, G",
					Value: "",
					Usage: "*grantee owner `HEX`",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "revoke-grant",
			Usage:     "withdraw a grant made by the actor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				actorFlag,
				cli.StringFlag{
					Name:  "grantee, G",
					Value: "",
					Usage: "*grantee owner `HEX`",
				},
			},
			Action: runRevokeGrant,
		},
		{
			Name:      "grants",
			Usage:     "list grants made by an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runGrants,
		},
		{
			Name:      "has-access",
			Usage:     "check whether an actor may read the records of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag, actorFlag},
			Action:    runHasAccess,
		},
		{
			Name:      "member-read",
			Usage:     "read a record of an owner through a grant",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{actorFlag, ownerFlag, issuerFlag, recordFlag},
			Action:    runMemberRead,
		},
		{
			Name:      "member-list",
			Usage:     "list records of an owner through a grant",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{actorFlag, ownerFlag, pageFlag, limitFlag},
			Action:    runMemberList,
		},
	}
}
