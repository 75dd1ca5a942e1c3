package core

import (
	"math"
	"time"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// lockdownInfo describes the one retained intervention for a group.
type lockdownInfo struct {
	x         int
	eventType string
	intercept *float64
	lockdownY *float64
	slope     *float64
}

// JoinInterventions left-joins at most one intervention per group onto its
// aligned rows and appends a marker row at the exact intervention offset.
// Groups without a qualifying event keep null lockdown fields.
func JoinInterventions(groups []schema.AlignedGroup, events []schema.InterventionEvent) []schema.ChartRow {
	retained := retainEvents(groups, events)

	total := 0
	for _, g := range groups {
		total += len(g.Rows)
	}

	rows := make([]schema.ChartRow, 0, total+len(retained))
	for _, g := range groups {
		rows = append(rows, joinGroup(g, retained[g.Group])...)
	}
	return rows
}

// retainEvents picks at most one event per group: the minimum positive
// offset from the group's anchor, first in input order when offsets tie.
// Events at or before the anchor are discarded.
func retainEvents(groups []schema.AlignedGroup, events []schema.InterventionEvent) map[string]*lockdownInfo {
	anchors := make(map[string]time.Time, len(groups))
	for _, g := range groups {
		anchors[g.Group] = g.DateOfN
	}

	retained := make(map[string]*lockdownInfo)
	for _, e := range events {
		anchor, ok := anchors[e.Group]
		if !ok {
			continue // Event for a group absent from the aligned output
		}

		offset := contract.DaysBetween(anchor, e.Date)
		if offset <= 0 {
			continue
		}

		if current, ok := retained[e.Group]; ok && current.x <= offset {
			continue
		}
		retained[e.Group] = &lockdownInfo{x: offset, eventType: e.Type}
	}
	return retained
}

// joinGroup attaches lockdown fields to one group's rows. When the group has
// a retained event, a copy of its max-x row is appended with x forced to the
// intervention offset so consumers filtering on exact x always find a row.
func joinGroup(g schema.AlignedGroup, info *lockdownInfo) []schema.ChartRow {
	if info != nil {
		resolveLockdownParams(g, info)
	}

	rows := make([]schema.ChartRow, 0, len(g.Rows)+1)
	for _, r := range g.Rows {
		rows = append(rows, buildChartRow(r, info))
	}

	if info != nil && len(rows) > 0 {
		marker := rows[len(rows)-1].Clone()
		marker.X = info.x
		rows = append(rows, marker)
	}
	return rows
}

// resolveLockdownParams derives the intercept (y at the anchor row), the last
// observed y at or before the intervention, and the implied constant daily
// growth factor between them. Missing inputs leave fields nil; values are
// never synthesized.
func resolveLockdownParams(g schema.AlignedGroup, info *lockdownInfo) {
	for _, r := range g.Rows {
		if r.X == 0 {
			info.intercept = schema.Ptr(r.Y)
			break
		}
	}

	// Rows are in ascending x order, so the last match is the largest x.
	for _, r := range g.Rows {
		if r.X > info.x {
			break
		}
		info.lockdownY = schema.Ptr(r.Y)
	}

	info.slope = computeSlope(info.intercept, info.lockdownY, info.x)
}

// computeSlope returns exp(ln(lockdownY/intercept)/lockdownX), the constant
// daily growth factor implied between anchor and intervention. It is nil
// whenever the ratio or the offset is degenerate.
func computeSlope(intercept, lockdownY *float64, lockdownX int) *float64 {
	if intercept == nil || lockdownY == nil || lockdownX == 0 {
		return nil
	}
	if *intercept <= 0 || *lockdownY <= 0 {
		return nil
	}
	slope := math.Exp(math.Log(*lockdownY / *intercept) / float64(lockdownX))
	return schema.Ptr(slope)
}

// buildChartRow extends one aligned row with the group's lockdown fields.
// Each row owns fresh pointers so later mutation cannot alias across rows.
func buildChartRow(r schema.AlignedRow, info *lockdownInfo) schema.ChartRow {
	row := schema.ChartRow{AlignedRow: r}
	if info == nil {
		return row
	}

	row.LockdownX = schema.Ptr(info.x)
	row.LockdownType = schema.Ptr(info.eventType)
	if info.intercept != nil {
		row.Intercept = schema.Ptr(*info.intercept)
	}
	if info.lockdownY != nil {
		row.LockdownY = schema.Ptr(*info.lockdownY)
	}
	if info.slope != nil {
		row.LockdownSlope = schema.Ptr(*info.slope)
	}
	return row
}
