package jvdata

// Vote-count records (票数). Like the odds family the per-combination vote
// blocks are kept as single spans.

// h1Layout is vote counts for win, place and bracket quinella (票数1).
func h1Layout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.integer("toroku_tosu", 2)
	b.integer("syusso_tosu", 2)
	b.text("hatubai_flag_tansyo", 1)
	b.text("hatubai_flag_fukusyo", 1)
	b.text("hatubai_flag_wakuren", 1)
	b.text("fukuchaku_barai_key", 1)
	b.text("henkan_uma_info", 28)
	b.text("henkan_waku_info", 8)
	b.text("henkan_dowaku_info", 8)
	b.text("hyosu_tansyo_info", 420)  // 28 x 15
	b.text("hyosu_fukusyo_info", 420) // 28 x 15
	b.text("hyosu_wakuren_info", 540) // 36 x 15
	b.bigint("total_hyosu_tansyo", 11)
	b.bigint("total_hyosu_fukusyo", 11)
	b.bigint("total_hyosu_wakuren", 11)
	b.bigint("henkan_hyosu_tansyo", 11)
	b.bigint("henkan_hyosu_fukusyo", 11)
	b.bigint("henkan_hyosu_wakuren", 11)
	return Layout{Tag: "H1", Fields: b.fields}
}

// h6Layout is vote counts for the trifecta (票数6 3連単).
func h6Layout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.integer("toroku_tosu", 2)
	b.integer("syusso_tosu", 2)
	b.text("hatubai_flag_sanrentan", 1)
	b.text("henkan_uma_info", 18)
	b.text("hyosu_sanrentan_info", 102816) // 4896 x 21
	b.bigint("total_hyosu_sanrentan", 11)
	b.bigint("henkan_hyosu_sanrentan", 11)
	return Layout{Tag: "H6", Fields: b.fields}
}
