// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

// emojiTags maps emoji glyphs to bracketed ASCII tags. Keys are disjoint,
// so replacement order does not matter.
var emojiTags = map[string]string{
	"😀": "[smile]",
	"😃": "[joy]",
	"😄": "[laugh]",
	"😁": "[grin]",
	"😆": "[laughing]",
	"😅": "[sweat_smile]",
	"🤣": "[rofl]",
	"😂": "[joy_tears]",
	"🙂": "[slight_smile]",
	"🙃": "[upside_down]",
	"😉": "[wink]",
	"😊": "[blush]",
	"😇": "[innocent]",
	"🥰": "[heart_eyes]",
	"😍": "[heart_eyes]",
	"🤩": "[star_struck]",
	"😘": "[kiss]",
	"😗": "[kissing]",
	"☺️": "[relaxed]",
	"😚": "[kissing_closed_eyes]",
	"😙": "[kissing_smiling_eyes]",
	"🥲": "[smiling_tear]",
	"😋": "[yum]",
	"😛": "[stuck_out_tongue]",
	"😜": "[stuck_out_tongue_winking_eye]",
	"🤪": "[zany_face]",
	"😝": "[stuck_out_tongue_closed_eyes]",
	"🤑": "[money_mouth]",
	"🤗": "[hugs]",
	"🤭": "[hand_over_mouth]",
	"🤫": "[shushing]",
	"🤔": "[thinking]",
	"🤐": "[zipper_mouth]",
	"🤨": "[raised_eyebrow]",
	"😐": "[neutral]",
	"😑": "[expressionless]",
	"😶": "[no_mouth]",
	"😏": "[smirk]",
	"😒": "[unamused]",
	"🙄": "[eye_roll]",
	"😬": "[grimacing]",
	"🤥": "[lying]",
	"😔": "[pensive]",
	"😕": "[confused]",
	"🙁": "[slight_frown]",
	"☹️": "[frowning]",
	"😣": "[persevere]",
	"😖": "[confounded]",
	"😫": "[tired]",
	"😩": "[weary]",
	"🥺": "[pleading]",
	"😢": "[cry]",
	"😭": "[sob]",
	"😤": "[huff]",
	"😠": "[angry]",
	"😡": "[rage]",
	"🤬": "[swearing]",
	"🤯": "[exploding_head]",
	"😳": "[flushed]",
	"🥵": "[hot]",
	"🥶": "[cold]",
	"😱": "[scream]",
	"😨": "[fearful]",
	"😰": "[anxious]",
	"😥": "[disappointed_relieved]",
	"😓": "[cold_sweat]",
	"🙈": "[see_no_evil]",
	"🙉": "[hear_no_evil]",
	"🙊": "[speak_no_evil]",
	"💀": "[skull]",
	"☠️": "[skull_crossbones]",
	"👻": "[ghost]",
	"👽": "[alien]",
	"🤖": "[robot]",
	"💩": "[poop]",
	"😺": "[smiley_cat]",
	"😸": "[smile_cat]",
	"😹": "[joy_cat]",
	"😻": "[heart_eyes_cat]",
	"😼": "[smirk_cat]",
	"😽": "[kissing_cat]",
	"🙀": "[scream_cat]",
	"😿": "[crying_cat]",
	"😾": "[pouting_cat]",
	"❤️": "[red_heart]",
	"🧡": "[orange_heart]",
	"💛": "[yellow_heart]",
	"💚": "[green_heart]",
	"💙": "[blue_heart]",
	"💜": "[purple_heart]",
	"🖤": "[black_heart]",
	"🤍": "[white_heart]",
	"🤎": "[brown_heart]",
	"💔": "[broken_heart]",
	"❣️": "[heart_exclamation]",
	"💕": "[two_hearts]",
	"💞": "[revolving_hearts]",
	"💓": "[heartbeat]",
	"💗": "[growing_heart]",
	"💖": "[sparkling_heart]",
	"💘": "[cupid]",
	"💝": "[gift_heart]",
	"💟": "[heart_decoration]",
	"☮️": "[peace]",
	"✝️": "[cross]",
	"☪️": "[crescent]",
	"🕉️": "[om]",
	"☸️": "[dharma]",
	"✡️": "[star_of_david]",
	"🔯": "[six_pointed_star]",
	"🕎": "[menorah]",
	"☯️": "[yin_yang]",
	"☦️": "[orthodox_cross]",
	"🛐": "[place_of_worship]",
	"⛎": "[ophiuchus]",
	"♈": "[aries]",
	"♉": "[taurus]",
	"♊": "[gemini]",
	"♋": "[cancer]",
	"♌": "[leo]",
	"♍": "[virgo]",
	"♎": "[libra]",
	"♏": "[scorpio]",
	"♐": "[sagittarius]",
	"♑": "[capricorn]",
	"♒": "[aquarius]",
	"♓": "[pisces]",
	"🆔": "[id]",
	"⚛️": "[atom]",
	"🉑": "[accept]",
	"☢️": "[radioactive]",
	"☣️": "[biohazard]",
	"📴": "[mobile_phone_off]",
	"📳": "[vibration_mode]",
	"🈶": "[not_free_of_charge]",
	"🈚": "[free_of_charge]",
	"🈸": "[application]",
	"🈺": "[open_for_business]",
	"🈷️": "[monthly_amount]",
	"✴️": "[eight_pointed_star]",
	"🆚": "[vs]",
	"💮": "[white_flower]",
	"🉐": "[bargain]",
	"㊙️": "[secret]",
	"㊗️": "[congratulations]",
	"🈴": "[passing_grade]",
	"🈵": "[no_vacancy]",
	"🈹": "[discount]",
	"🈲": "[prohibited]",
	"🅰️": "[a_button]",
	"🅱️": "[b_button]",
	"🆎": "[ab_button]",
	"🆑": "[cl_button]",
	"🅾️": "[o_button]",
	"🆘": "[sos]",
	"❌": "[cross_mark]",
	"⭕": "[heavy_large_circle]",
	"🛑": "[stop_sign]",
	"⛔": "[no_entry]",
	"📛": "[name_badge]",
	"🚫": "[prohibited]",
	"💯": "[hundred]",
	"💢": "[anger]",
	"♨️": "[hot_springs]",
	"🚷": "[no_pedestrians]",
	"🚯": "[no_littering]",
	"🚳": "[no_bicycles]",
	"🚱": "[non_potable_water]",
	"🔞": "[no_one_under_eighteen]",
	"📵": "[no_mobile_phones]",
	"🚭": "[no_smoking]",
	"❗": "[exclamation]",
	"❕": "[white_exclamation]",
	"❓": "[question]",
	"❔": "[white_question]",
	"‼️": "[double_exclamation]",
	"⁉️": "[interrobang]",
	"🔅": "[low_brightness]",
	"🔆": "[high_brightness]",
	"〽️": "[part_alternation_mark]",
	"⚠️": "[warning]",
	"🚸": "[children_crossing]",
	"🔱": "[trident]",
	"⚜️": "[fleur_de_lis]",
	"🔰": "[japanese_symbol_for_beginner]",
	"♻️": "[recycling]",
	"✅": "[check_mark]",
	"🈯": "[reserved]",
	"💹": "[chart_increasing_with_yen]",
	"❇️": "[sparkle]",
	"✳️": "[eight_spoked_asterisk]",
	"❎": "[cross_mark_button]",
	"🌐": "[globe_with_meridians]",
	"💠": "[diamond_with_a_dot]",
	"Ⓜ️": "[circled_m]",
	"🌀": "[cyclone]",
	"💤": "[zzz]",
	"🏧": "[atm]",
	"🚾": "[water_closet]",
	"♿": "[wheelchair]",
	"🅿️": "[p_button]",
	"🈳": "[vacancy]",
	"🈂️": "[service_charge]",
	"🛂": "[passport_control]",
	"🛃": "[customs]",
	"🛄": "[baggage_claim]",
	"🛅": "[left_luggage]",
	"🚹": "[mens]",
	"🚺": "[womens]",
	"🚼": "[baby_symbol]",
	"🚻": "[restroom]",
	"🚮": "[litter_in_bin]",
	"🎦": "[cinema]",
	"📶": "[signal_strength]",
	"🈁": "[here]",
	"🔣": "[symbols]",
	"ℹ️": "[information]",
	"🔤": "[abc]",
	"🔡": "[abcd]",
	"🔠": "[capital_abcd]",
	"🆖": "[ng_button]",
	"🆗": "[ok_button]",
	"🆙": "[up_button]",
	"🆒": "[cool_button]",
	"🆕": "[new_button]",
	"🆓": "[free_button]",
	"0️⃣": "[keycap_0]",
	"1️⃣": "[keycap_1]",
	"2️⃣": "[keycap_2]",
	"3️⃣": "[keycap_3]",
	"4️⃣": "[keycap_4]",
	"5️⃣": "[keycap_5]",
	"6️⃣": "[keycap_6]",
	"7️⃣": "[keycap_7]",
	"8️⃣": "[keycap_8]",
	"9️⃣": "[keycap_9]",
	"🔟": "[keycap_10]",
	"🔢": "[input_numbers]",
	"#️⃣": "[hash]",
	"*️⃣": "[asterisk]",
	"⏏️": "[eject]",
	"▶️": "[play]",
	"⏸️": "[pause]",
	"⏯️": "[play_pause]",
	"⏹️": "[stop]",
	"⏺️": "[record]",
	"⏭️": "[next_track]",
	"⏮️": "[previous_track]",
	"⏩": "[fast_forward]",
	"⏪": "[rewind]",
	"⏫": "[fast_up]",
	"⏬": "[fast_down]",
	"◀️": "[reverse]",
	"🔼": "[up_button]",
	"🔽": "[down_button]",
	"➡️": "[right_arrow]",
	"⬅️": "[left_arrow]",
	"⬆️": "[up_arrow]",
	"⬇️": "[down_arrow]",
	"↗️": "[up_right_arrow]",
	"↘️": "[down_right_arrow]",
	"↙️": "[down_left_arrow]",
	"↖️": "[up_left_arrow]",
	"↕️": "[up_down_arrow]",
	"↔️": "[left_right_arrow]",
	"↪️": "[left_arrow_curving_right]",
	"↩️": "[right_arrow_curving_left]",
	"⤴️": "[right_arrow_curving_up]",
	"⤵️": "[right_arrow_curving_down]",
	"🔀": "[twisted_rightwards_arrows]",
	"🔁": "[repeat]",
	"🔂": "[repeat_single]",
	"🔄": "[counterclockwise_arrows]",
	"🔃": "[clockwise_vertical_arrows]",
	"🎵": "[musical_note]",
	"🎶": "[musical_notes]",
	"➕": "[plus]",
	"➖": "[minus]",
	"➗": "[divide]",
	"✖️": "[multiply]",
	"♾️": "[infinity]",
	"💲": "[heavy_dollar_sign]",
	"💱": "[currency_exchange]",
	"™️": "[trademark]",
	"©️": "[copyright]",
	"®️": "[registered]",
	"〰️": "[wavy_dash]",
	"➰": "[curly_loop]",
	"➿": "[double_curly_loop]",
	"🔚": "[end]",
	"🔙": "[back]",
	"🔛": "[on]",
	"🔝": "[top]",
	"🔜": "[soon]",
	"✔️": "[check_mark]",
	"☑️": "[check_box_with_check]",
	"🔘": "[radio_button]",
	"🔴": "[red_circle]",
	"🟠": "[orange_circle]",
	"🟡": "[yellow_circle]",
	"🟢": "[green_circle]",
	"🔵": "[blue_circle]",
	"🟣": "[purple_circle]",
	"⚫": "[black_circle]",
	"⚪": "[white_circle]",
	"🟤": "[brown_circle]",
	"🔺": "[red_triangle_pointed_up]",
	"🔻": "[red_triangle_pointed_down]",
	"🔸": "[small_orange_diamond]",
	"🔹": "[small_blue_diamond]",
	"🔶": "[large_orange_diamond]",
	"🔷": "[large_blue_diamond]",
	"🔳": "[white_square_button]",
	"🔲": "[black_square_button]",
	"▪️": "[black_small_square]",
	"▫️": "[white_small_square]",
	"◾": "[black_medium_small_square]",
	"◽": "[white_medium_small_square]",
	"◼️": "[black_medium_square]",
	"◻️": "[white_medium_square]",
	"🟥": "[red_square]",
	"🟧": "[orange_square]",
	"🟨": "[yellow_square]",
	"🟩": "[green_square]",
	"🟦": "[blue_square]",
	"🟪": "[purple_square]",
	"⬛": "[black_large_square]",
	"⬜": "[white_large_square]",
	"🟫": "[brown_square]",
	"🔈": "[speaker_low_volume]",
	"🔇": "[muted_speaker]",
	"🔉": "[speaker_medium_volume]",
	"🔊": "[speaker_high_volume]",
	"🔔": "[bell]",
	"🔕": "[bell_with_slash]",
	"📣": "[megaphone]",
	"📢": "[loudspeaker]",
	"👁‍🗨": "[eye_in_speech_bubble]",
	"💬": "[speech_balloon]",
	"💭": "[thought_balloon]",
	"🗯️": "[right_anger_bubble]",
	"♠️": "[spade_suit]",
	"♣️": "[club_suit]",
	"♥️": "[heart_suit]",
	"♦️": "[diamond_suit]",
	"🃏": "[joker]",
	"🎴": "[flower_playing_cards]",
	"🀄": "[mahjong_red_dragon]",
	"🍻": "[beer]",
	"🧿": "[nazar_amulet]",
}
