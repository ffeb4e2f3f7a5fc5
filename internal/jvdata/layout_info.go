package jvdata

// Schedule, special-entry, course and training records.

// ysLayout is the meeting schedule record (開催スケジュール).
func ysLayout() Layout {
	var b builder
	b.head()
	b.integer("year", 4)
	b.integer("month_day", 4)
	b.text("jyo_cd", 2)
	b.integer("kaiji", 2)
	b.integer("nichiji", 2)
	b.text("youbi_cd", 1)
	b.text("jyusyo_annai_info", 354) // 3 stakes x 118
	return Layout{Tag: "YS", Fields: b.fields}
}

// tkLayout is the special-race entry record (特別登録馬).
func tkLayout() Layout {
	var b builder
	b.head()
	b.raceKey()
	b.text("youbi_cd", 1)
	b.text("toku_num", 4)
	b.text("hondai", 60)
	b.text("fukudai", 60)
	b.text("kakko", 60)
	b.text("hondai_eng", 120)
	b.text("fukudai_eng", 120)
	b.text("kakko_eng", 120)
	b.text("ryakusyo10", 20)
	b.text("ryakusyo6", 12)
	b.text("ryakusyo3", 6)
	b.text("kubun", 1)
	b.integer("nkai", 3)
	b.text("grade_cd", 1)
	b.text("syubetu_cd", 2)
	b.text("kigo_cd", 3)
	b.text("jyuryo_cd", 1)
	b.text("jyoken_cd1", 3)
	b.text("jyoken_cd2", 3)
	b.text("jyoken_cd3", 3)
	b.text("jyoken_cd4", 3)
	b.text("jyoken_cd5", 3)
	b.integer("kyori", 4)
	b.text("track_cd", 2)
	b.text("course_kubun_cd", 2)
	b.text("hande_date", 8)
	b.integer("toroku_tosu", 3)
	b.text("toroku_uma_info", 21000) // 300 entries x 70
	return Layout{Tag: "TK", Fields: b.fields}
}

// csLayout is the course description record (コース情報).
func csLayout() Layout {
	var b builder
	b.head()
	b.text("jyo_cd", 2)
	b.integer("kyori", 4)
	b.text("track_cd", 2)
	b.text("kaishu_date", 8)
	b.text("course_ex", 6800)
	return Layout{Tag: "CS", Fields: b.fields}
}

// rcLayout is the course record-time record (レコードマスタ).
func rcLayout() Layout {
	var b builder
	b.head()
	b.text("record_id_kubun", 1)
	b.integer("year", 4)
	b.integer("month_day", 4)
	b.text("jyo_cd", 2)
	b.integer("kaiji", 2)
	b.integer("nichiji", 2)
	b.integer("race_num", 2)
	b.text("toku_num", 4)
	b.text("hondai", 60)
	b.text("grade_cd", 1)
	b.text("syubetu_cd", 2)
	b.integer("kyori", 4)
	b.text("track_cd", 2)
	b.text("record_kubun", 1)
	b.real("record_time", 4)
	b.text("tenko_cd", 1)
	b.text("siba_baba_cd", 1)
	b.text("dirt_baba_cd", 1)
	b.text("record_uma_info", 390) // 3 holders x 130
	return Layout{Tag: "RC", Fields: b.fields}
}

// hsLayout is the sale-result record (競走馬市場取引価格).
func hsLayout() Layout {
	var b builder
	b.head()
	b.text("ketto_num", 10)
	b.text("chichi_hansyoku_num", 10)
	b.text("haha_hansyoku_num", 10)
	b.integer("birth_year", 4)
	b.text("saleshost_code", 6)
	b.text("saleshost_name", 40)
	b.text("sale_name", 80)
	b.text("from_date", 8)
	b.text("to_date", 8)
	b.integer("barei", 1)
	b.bigint("price", 10)
	return Layout{Tag: "HS", Fields: b.fields}
}

// hyLayout is the horse-name-origin record (馬名の意味由来).
func hyLayout() Layout {
	var b builder
	b.head()
	b.text("ketto_num", 10)
	b.text("bamei", 36)
	b.text("origin", 64)
	return Layout{Tag: "HY", Fields: b.fields}
}

// hcLayout is the slope-course training record (坂路調教).
func hcLayout() Layout {
	var b builder
	b.head()
	b.text("tresen_kubun", 1)
	b.text("chokyo_date", 8)
	b.text("chokyo_time", 4)
	b.text("ketto_num", 10)
	b.real("harontime_4", 4)
	b.real("laptime_800_600", 3)
	b.real("harontime_3", 4)
	b.real("laptime_600_400", 3)
	b.real("harontime_2", 4)
	b.real("laptime_400_200", 3)
	b.real("laptime_200_0", 3)
	return Layout{Tag: "HC", Fields: b.fields}
}

// wcLayout is the wood-chip-course training record (ウッドチップ調教).
func wcLayout() Layout {
	var b builder
	b.head()
	b.text("tresen_kubun", 1)
	b.text("chokyo_date", 8)
	b.text("chokyo_time", 4)
	b.text("ketto_num", 10)
	b.text("course", 1)
	b.text("baba_mawari", 1)
	b.text("reserved", 1)
	b.real("harontime_10", 4)
	b.real("laptime_2000_1800", 3)
	b.real("harontime_9", 4)
	b.real("laptime_1800_1600", 3)
	b.real("harontime_8", 4)
	b.real("laptime_1600_1400", 3)
	b.real("harontime_7", 4)
	b.real("laptime_1400_1200", 3)
	b.real("harontime_6", 4)
	b.real("laptime_1200_1000", 3)
	b.real("harontime_5", 4)
	b.real("laptime_1000_800", 3)
	b.real("harontime_4", 4)
	b.real("laptime_800_600", 3)
	b.real("harontime_3", 4)
	b.real("laptime_600_400", 3)
	b.real("harontime_2", 4)
	b.real("laptime_400_200", 3)
	b.real("laptime_200_0", 3)
	return Layout{Tag: "WC", Fields: b.fields}
}
