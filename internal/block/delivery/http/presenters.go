package http

import (
	"time"

	"mobile-recovery-booking/internal/block"
	"mobile-recovery-booking/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	BlockDate string `json:"block_date" binding:"required,datetime=2006-01-02"`
	IsAllDay  bool   `json:"is_all_day"`
	StartTime string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time"   binding:"omitempty,datetime=15:04"`
	Reason    string `json:"reason"     binding:"max=500"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() block.CreateBlockInput {
	return block.CreateBlockInput{
		BlockDate: r.BlockDate,
		IsAllDay:  r.IsAllDay,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reason:    r.Reason,
	}
}

// ---

type listReq struct {
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() block.ListBlocksInput {
	return block.ListBlocksInput{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
	}
}

// ---

type updateReq struct {
	ID        string `json:"-"` // populated from URI param
	BlockDate string `json:"block_date" binding:"required,datetime=2006-01-02"`
	IsAllDay  bool   `json:"is_all_day"`
	StartTime string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time"   binding:"omitempty,datetime=15:04"`
	Reason    string `json:"reason"     binding:"max=500"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() block.UpdateBlockInput {
	return block.UpdateBlockInput{
		ID:        r.ID,
		BlockDate: r.BlockDate,
		IsAllDay:  r.IsAllDay,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reason:    r.Reason,
	}
}

// --- Response DTOs ---

type blockResp struct {
	ID        string    `json:"id"`
	BlockDate string    `json:"block_date"`
	IsAllDay  bool      `json:"is_all_day"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBlockResp(b model.ManualBlock) blockResp {
	return blockResp{
		ID:        b.ID,
		BlockDate: b.BlockDate,
		IsAllDay:  b.IsAllDay,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type createResp struct {
	Block blockResp `json:"block"`
}

func (h *handler) newCreateResp(out block.CreateBlockOutput) createResp {
	return createResp{Block: newBlockResp(out.Block)}
}

type listResp struct {
	Blocks []blockResp `json:"blocks"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out block.ListBlocksOutput) listResp {
	blocks := make([]blockResp, len(out.Blocks))
	for i, b := range out.Blocks {
		blocks[i] = newBlockResp(b)
	}
	return listResp{
		Blocks: blocks,
		Total:  out.Total,
	}
}

type detailResp struct {
	Block blockResp `json:"block"`
}

func (h *handler) newDetailResp(out block.DetailBlockOutput) detailResp {
	return detailResp{Block: newBlockResp(out.Block)}
}

type updateResp struct {
	Block blockResp `json:"block"`
}

func (h *handler) newUpdateResp(out block.UpdateBlockOutput) updateResp {
	return updateResp{Block: newBlockResp(out.Block)}
}
