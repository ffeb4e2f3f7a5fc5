package jvdata

// Odds records share a header (race key, announcement time, head counts) and
// differ in their bet-type blocks. The original feed repeats a small element
// (umaban/kumi + odds + ninki) a fixed number of times per block; blocks stay
// as single spans here.

func oddsHead(b *builder) {
	b.head()
	b.raceKey()
	b.text("happyo_time", 8)
	b.integer("toroku_tosu", 2)
	b.integer("syusso_tosu", 2)
}

// o1Layout is win/place/bracket odds (オッズ1 単複枠).
func o1Layout() Layout {
	var b builder
	oddsHead(&b)
	b.text("hatubai_flag_tansyo", 1)
	b.text("hatubai_flag_fukusyo", 1)
	b.text("hatubai_flag_wakuren", 1)
	b.text("fukuchaku_barai_key", 1)
	b.text("odds_tansyo_info", 224)  // 28 x 8
	b.text("odds_fukusyo_info", 336) // 28 x 12
	b.text("odds_wakuren_info", 324) // 36 x 9
	b.bigint("total_hyosu_tansyo", 11)
	b.bigint("total_hyosu_fukusyo", 11)
	b.bigint("total_hyosu_wakuren", 11)
	return Layout{Tag: "O1", Fields: b.fields}
}

// o2Layout is quinella odds (オッズ2 馬連).
func o2Layout() Layout {
	var b builder
	oddsHead(&b)
	b.text("hatubai_flag_umaren", 1)
	b.text("odds_umaren_info", 1989) // 153 x 13
	b.bigint("total_hyosu_umaren", 11)
	return Layout{Tag: "O2", Fields: b.fields}
}

// o3Layout is quinella-place odds (オッズ3 ワイド).
func o3Layout() Layout {
	var b builder
	oddsHead(&b)
	b.text("hatubai_flag_wide", 1)
	b.text("odds_wide_info", 2601) // 153 x 17
	b.bigint("total_hyosu_wide", 11)
	return Layout{Tag: "O3", Fields: b.fields}
}

// o4Layout is exacta odds (オッズ4 馬単).
func o4Layout() Layout {
	var b builder
	oddsHead(&b)
	b.text("hatubai_flag_umatan", 1)
	b.text("odds_umatan_info", 3978) // 306 x 13
	b.bigint("total_hyosu_umatan", 11)
	return Layout{Tag: "O4", Fields: b.fields}
}

// o5Layout is trio odds (オッズ5 3連複).
func o5Layout() Layout {
	var b builder
	oddsHead(&b)
	b.text("hatubai_flag_sanrenpuku", 1)
	b.text("odds_sanrenpuku_info", 12240) // 816 x 15
	b.bigint("total_hyosu_sanrenpuku", 11)
	return Layout{Tag: "O5", Fields: b.fields}
}

// o6Layout is trifecta odds (オッズ6 3連単).
func o6Layout() Layout {
	var b builder
	oddsHead(&b)
	b.text("hatubai_flag_sanrentan", 1)
	b.text("odds_sanrentan_info", 83232) // 4896 x 17
	b.bigint("total_hyosu_sanrentan", 11)
	return Layout{Tag: "O6", Fields: b.fields}
}
