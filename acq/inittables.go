/*------------------------------------------------------------------------------
* inittables.go : static PRN phase-init word tables
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : bit-exact SV-indexed init words reproduced from the reference
*         model and its companion table-generation source. GpsInit/B1CInit/
*         L1CInit are the ones the acquisition engine itself indexes
*         (PrnSelect 0/2/3); the remainder (CAPrnInit..B2aPilotInit) are the
*         full per-signal table set the rest of a GNSS receiver built on
*         this engine would need (PRN assignment tracking, other channel
*         types), carried here so callers never have to re-derive them.
*-----------------------------------------------------------------------------*/
package acq

var GpsInit = [51]uint32{
	(0 << 28) | 0x037ffff1,
	(0 << 28) | 0x01bffff1,
	(0 << 28) | 0x00dffff1,
	(0 << 28) | 0x006ffff1,
	(0 << 28) | 0x06903ff1,
	(0 << 28) | 0x03483ff1,
	(0 << 28) | 0x069bbff1,
	(0 << 28) | 0x034dfff1,
	(0 << 28) | 0x01a6fff1,
	(0 << 28) | 0x02eefff1,
	(0 << 28) | 0x01777ff1,
	(0 << 28) | 0x005dfff1,
	(0 << 28) | 0x002efff1,
	(0 << 28) | 0x00177ff1,
	(0 << 28) | 0x000bbff1,
	(0 << 28) | 0x0005fff1,
	(0 << 28) | 0x06447ff1,
	(0 << 28) | 0x03223ff1,
	(0 << 28) | 0x01913ff1,
	(0 << 28) | 0x00c8bff1,
	(0 << 28) | 0x00647ff1,
	(0 << 28) | 0x00323ff1,
	(0 << 28) | 0x07333ff1,
	(0 << 28) | 0x00e67ff1,
	(0 << 28) | 0x00733ff1,
	(0 << 28) | 0x0039bff1,
	(0 << 28) | 0x001cfff1,
	(0 << 28) | 0x000e7ff1,
	(0 << 28) | 0x06a23ff1,
	(0 << 28) | 0x03513ff1,
	(0 << 28) | 0x01a8bff1,
	(0 << 28) | 0x00d47ff1,
	(0 << 28) | 0x091a7ff1,
	(0 << 28) | 0x0a863ff1,
	(0 << 28) | 0x02dcfff1,
	(0 << 28) | 0x02693ff1,
	(0 << 28) | 0x0e3e3ff1,
	(0 << 28) | 0x08f87ff1,
	(0 << 28) | 0x0fd27ff1,
	(0 << 28) | 0x073d7ff1,
	(0 << 28) | 0x0d6afff1,
	(0 << 28) | 0x0aa37ff1,
	(0 << 28) | 0x03857ff1,
	(0 << 28) | 0x05a57ff1,
	(0 << 28) | 0x05433ff1,
	(0 << 28) | 0x0f67bff1,
	(0 << 28) | 0x07183ff1,
	(0 << 28) | 0x0a387ff1,
	(0 << 28) | 0x07833ff1,
	(0 << 28) | 0x081e3ff1,
	(0 << 28) | 0x04a13ff1,
}

var B1CInit = [63]uint32{
	(8 << 28) +  796 + (( 7575 - 1) << 14),
	(8 << 28) +  156 + (( 2369 - 1) << 14),
	(8 << 28) + 4198 + (( 5688 - 1) << 14),
	(8 << 28) + 3941 + ((  539 - 1) << 14),
	(8 << 28) + 1374 + (( 2270 - 1) << 14),
	(8 << 28) + 1338 + (( 7306 - 1) << 14),
	(8 << 28) + 1833 + (( 6457 - 1) << 14),
	(8 << 28) + 2521 + (( 6254 - 1) << 14),
	(8 << 28) + 3175 + (( 5644 - 1) << 14),
	(8 << 28) +  168 + (( 7119 - 1) << 14),
	(8 << 28) + 2715 + (( 1402 - 1) << 14),
	(8 << 28) + 4408 + (( 5557 - 1) << 14),
	(8 << 28) + 3160 + (( 5764 - 1) << 14),
	(8 << 28) + 2796 + (( 1073 - 1) << 14),
	(8 << 28) +  459 + (( 7001 - 1) << 14),
	(8 << 28) + 3594 + (( 5910 - 1) << 14),
	(8 << 28) + 4813 + ((10060 - 1) << 14),
	(8 << 28) +  586 + (( 2710 - 1) << 14),
	(8 << 28) + 1428 + (( 1546 - 1) << 14),
	(8 << 28) + 2371 + (( 6887 - 1) << 14),
	(8 << 28) + 2285 + (( 1883 - 1) << 14),
	(8 << 28) + 3377 + (( 5613 - 1) << 14),
	(8 << 28) + 4965 + (( 5062 - 1) << 14),
	(8 << 28) + 3779 + (( 1038 - 1) << 14),
	(8 << 28) + 4547 + ((10170 - 1) << 14),
	(8 << 28) + 1646 + (( 6484 - 1) << 14),
	(8 << 28) + 1430 + (( 1718 - 1) << 14),
	(8 << 28) +  607 + (( 2535 - 1) << 14),
	(8 << 28) + 2118 + (( 1158 - 1) << 14),
	(8 << 28) + 4709 + (( 526  - 1) << 14),
	(8 << 28) + 1149 + (( 7331 - 1) << 14),
	(8 << 28) + 3283 + (( 5844 - 1) << 14),
	(8 << 28) + 2473 + (( 6423 - 1) << 14),
	(8 << 28) + 1006 + (( 6968 - 1) << 14),
	(8 << 28) + 3670 + (( 1280 - 1) << 14),
	(8 << 28) + 1817 + (( 1838 - 1) << 14),
	(8 << 28) +  771 + (( 1989 - 1) << 14),
	(8 << 28) + 2173 + (( 6468 - 1) << 14),
	(8 << 28) +  740 + (( 2091 - 1) << 14),
	(8 << 28) + 1433 + (( 1581 - 1) << 14),
	(8 << 28) + 2458 + (( 1453 - 1) << 14),
	(8 << 28) + 3459 + (( 6252 - 1) << 14),
	(8 << 28) + 2155 + (( 7122 - 1) << 14),
	(8 << 28) + 1205 + (( 7711 - 1) << 14),
	(8 << 28) +  413 + (( 7216 - 1) << 14),
	(8 << 28) +  874 + (( 2113 - 1) << 14),
	(8 << 28) + 2463 + (( 1095 - 1) << 14),
	(8 << 28) + 1106 + (( 1628 - 1) << 14),
	(8 << 28) + 1590 + (( 1713 - 1) << 14),
	(8 << 28) + 3873 + (( 6102 - 1) << 14),
	(8 << 28) + 4026 + (( 6123 - 1) << 14),
	(8 << 28) + 4272 + (( 6070 - 1) << 14),
	(8 << 28) + 3556 + (( 1115 - 1) << 14),
	(8 << 28) +  128 + (( 8047 - 1) << 14),
	(8 << 28) + 1200 + (( 6795 - 1) << 14),
	(8 << 28) +  130 + (( 2575 - 1) << 14),
	(8 << 28) + 4494 + ((   53 - 1) << 14),
	(8 << 28) + 1871 + (( 1729 - 1) << 14),
	(8 << 28) + 3073 + (( 6388 - 1) << 14),
	(8 << 28) + 4386 + ((  682 - 1) << 14),
	(8 << 28) + 4098 + (( 5565 - 1) << 14),
	(8 << 28) + 1923 + (( 7160 - 1) << 14),
	(8 << 28) + 1176 + (( 2277 - 1) << 14),
}

var L1CInit = [63]uint32{
	(10 << 28) + 5097 + ((  181 - 1) << 14),
	(10 << 28) + 5110 + ((  359 - 1) << 14),
	(10 << 28) + 5079 + ((   72 - 1) << 14),
	(10 << 28) + 4403 + (( 1110 - 1) << 14),
	(10 << 28) + 4121 + (( 1480 - 1) << 14),
	(10 << 28) + 5043 + (( 5034 - 1) << 14),
	(10 << 28) + 5042 + (( 4622 - 1) << 14),
	(10 << 28) + 5104 + ((    1 - 1) << 14),
	(10 << 28) + 4940 + (( 4547 - 1) << 14),
	(10 << 28) + 5035 + ((  826 - 1) << 14),
	(10 << 28) + 4372 + (( 6284 - 1) << 14),
	(10 << 28) + 5064 + (( 4195 - 1) << 14),
	(10 << 28) + 5084 + ((  368 - 1) << 14),
	(10 << 28) + 5048 + ((    1 - 1) << 14),
	(10 << 28) + 4950 + (( 4796 - 1) << 14),
	(10 << 28) + 5019 + ((  523 - 1) << 14),
	(10 << 28) + 5076 + ((  151 - 1) << 14),
	(10 << 28) + 3736 + ((  713 - 1) << 14),
	(10 << 28) + 4993 + (( 9850 - 1) << 14),
	(10 << 28) + 5060 + (( 5734 - 1) << 14),
	(10 << 28) + 5061 + ((   34 - 1) << 14),
	(10 << 28) + 5096 + (( 6142 - 1) << 14),
	(10 << 28) + 4983 + ((  190 - 1) << 14),
	(10 << 28) + 4783 + ((  644 - 1) << 14),
	(10 << 28) + 4991 + ((  467 - 1) << 14),
	(10 << 28) + 4815 + (( 5384 - 1) << 14),
	(10 << 28) + 4443 + ((  801 - 1) << 14),
	(10 << 28) + 4769 + ((  594 - 1) << 14),
	(10 << 28) + 4879 + (( 4450 - 1) << 14),
	(10 << 28) + 4894 + (( 9437 - 1) << 14),
	(10 << 28) + 4985 + (( 4307 - 1) << 14),
	(10 << 28) + 5056 + (( 5906 - 1) << 14),
	(10 << 28) + 4921 + ((  378 - 1) << 14),
	(10 << 28) + 5036 + (( 9448 - 1) << 14),
	(10 << 28) + 4812 + (( 9432 - 1) << 14),
	(10 << 28) + 4838 + (( 5849 - 1) << 14),
	(10 << 28) + 4855 + (( 5547 - 1) << 14),
	(10 << 28) + 4904 + (( 9546 - 1) << 14),
	(10 << 28) + 4753 + (( 9132 - 1) << 14),
	(10 << 28) + 4483 + ((  403 - 1) << 14),
	(10 << 28) + 4942 + (( 3766 - 1) << 14),
	(10 << 28) + 4813 + ((    3 - 1) << 14),
	(10 << 28) + 4957 + ((  684 - 1) << 14),
	(10 << 28) + 4618 + (( 9711 - 1) << 14),
	(10 << 28) + 4669 + ((  333 - 1) << 14),
	(10 << 28) + 4969 + (( 6124 - 1) << 14),
	(10 << 28) + 5031 + ((10216 - 1) << 14),
	(10 << 28) + 5038 + (( 4251 - 1) << 14),
	(10 << 28) + 4740 + (( 9893 - 1) << 14),
	(10 << 28) + 4073 + (( 9884 - 1) << 14),
	(10 << 28) + 4843 + (( 4627 - 1) << 14),
	(10 << 28) + 4979 + (( 4449 - 1) << 14),
	(10 << 28) + 4867 + (( 9798 - 1) << 14),
	(10 << 28) + 4964 + ((  985 - 1) << 14),
	(10 << 28) + 5025 + (( 4272 - 1) << 14),
	(10 << 28) + 4579 + ((  126 - 1) << 14),
	(10 << 28) + 4390 + ((10024 - 1) << 14),
	(10 << 28) + 4763 + ((  434 - 1) << 14),
	(10 << 28) + 4612 + (( 1029 - 1) << 14),
	(10 << 28) + 4784 + ((  561 - 1) << 14),
	(10 << 28) + 3716 + ((  289 - 1) << 14),
	(10 << 28) + 4703 + ((  638 - 1) << 14),
	(10 << 28) + 4851 + (( 4353 - 1) << 14),
}

var CAPrnInit = [32]uint32{
	0x037ffff1,
	0x01bffff1,
	0x00dffff1,
	0x006ffff1,
	0x06903ff1,
	0x03483ff1,
	0x069bbff1,
	0x034dfff1,
	0x01a6fff1,
	0x02eefff1,
	0x01777ff1,
	0x005dfff1,
	0x002efff1,
	0x00177ff1,
	0x000bbff1,
	0x0005fff1,
	0x06447ff1,
	0x03223ff1,
	0x01913ff1,
	0x00c8bff1,
	0x00647ff1,
	0x00323ff1,
	0x07333ff1,
	0x00e67ff1,
	0x00733ff1,
	0x0039bff1,
	0x001cfff1,
	0x000e7ff1,
	0x06a23ff1,
	0x03513ff1,
	0x01a8bff1,
	0x00d47ff1,
}

var WaasPrnInit = [19]uint32{
	0x091a7ff1,
	0x0a863ff1,
	0x02dcfff1,
	0x02693ff1,
	0x0e3e3ff1,
	0x08f87ff1,
	0x0fd27ff1,
	0x073d7ff1,
	0x0d6afff1,
	0x0aa37ff1,
	0x03857ff1,
	0x05a57ff1,
	0x05433ff1,
	0x0f67bff1,
	0x07183ff1,
	0x0a387ff1,
	0x07833ff1,
	0x081e3ff1,
	0x04a13ff1,
}

var L5IInit = [37]uint32{
	0x02753ffe,
	0x0ac1fffe,
	0x01013ffe,
	0x0646fffe,
	0x0ebbbffe,
	0x05f37ffe,
	0x0f92fffe,
	0x025efffe,
	0x0d4fbffe,
	0x07bf7ffe,
	0x05c83ffe,
	0x09f3bffe,
	0x039c3ffe,
	0x0e417ffe,
	0x05ab7ffe,
	0x093c3ffe,
	0x0f197ffe,
	0x0787bffe,
	0x0f89fffe,
	0x0b6b3ffe,
	0x01027ffe,
	0x0f7bfffe,
	0x07f0fffe,
	0x02d1fffe,
	0x0b65fffe,
	0x069abffe,
	0x07b53ffe,
	0x06af3ffe,
	0x087d7ffe,
	0x0ed0fffe,
	0x07947ffe,
	0x09d07ffe,
	0x0815bffe,
	0x09fdbffe,
	0x03b7fffe,
	0x0134bffe,
	0x00967ffe,
}

var L5QInit = [37]uint32{
	0x0334bffe,
	0x06f13ffe,
	0x0c47bffe,
	0x056e7ffe,
	0x04de7ffe,
	0x09553ffe,
	0x081ffffe,
	0x016b7ffe,
	0x0c2ebffe,
	0x06127ffe,
	0x0a043ffe,
	0x0a353ffe,
	0x0a597ffe,
	0x0fc2fffe,
	0x0f1ebffe,
	0x0fa5fffe,
	0x0133bffe,
	0x0276bffe,
	0x0da67ffe,
	0x08e1bffe,
	0x009b3ffe,
	0x071a7ffe,
	0x0be8bffe,
	0x0cfb3ffe,
	0x0d917ffe,
	0x03d57ffe,
	0x05f0fffe,
	0x042ffffe,
	0x02453ffe,
	0x09e0bffe,
	0x0a7d7ffe,
	0x0544bffe,
	0x0226bffe,
	0x0227bffe,
	0x0cd37ffe,
	0x0f5e3ffe,
	0x08b23ffe,
}

var E5aIInit = [50]uint32{
	0xc317fff,
	0x6273fff,
	0xba2ffff,
	0x85fffff,
	0x9b2bfff,
	0xdccffff,
	0x6e33fff,
	0x557ffff,
	0x0d5ffff,
	0xc27bfff,
	0xbb93fff,
	0x3aebfff,
	0xf3fffff,
	0x789bfff,
	0x3473fff,
	0x6c17fff,
	0xa2abfff,
	0x4e67fff,
	0xa7fbfff,
	0x0663fff,
	0x4dc3fff,
	0x7aebfff,
	0xbc97fff,
	0xcf0bfff,
	0x582bfff,
	0x6407fff,
	0xe75ffff,
	0x965ffff,
	0xc64ffff,
	0xbabbfff,
	0x0d43fff,
	0x6227fff,
	0xccd7fff,
	0x91d3fff,
	0xdd3bfff,
	0x177ffff,
	0x8b3bfff,
	0xec57fff,
	0xee6ffff,
	0xa6b7fff,
	0x60b3fff,
	0xb85ffff,
	0x3613fff,
	0xccb7fff,
	0xe4d7fff,
	0xaaeffff,
	0x87cffff,
	0xcf47fff,
	0x7b2bfff,
	0x5afffff,
}

var E5aQInit = [50]uint32{
	0xaeabfff,
	0x298bfff,
	0xa74ffff,
	0xcfa7fff,
	0xbbdbfff,
	0xa6c3fff,
	0xdeb7fff,
	0xbca3fff,
	0x3e5bfff,
	0x0f17fff,
	0x573ffff,
	0xd14bfff,
	0x70f7fff,
	0x7693fff,
	0xfdbbfff,
	0x14fffff,
	0x12d7fff,
	0x3463fff,
	0xa89bfff,
	0x5777fff,
	0x22cbfff,
	0x4a63fff,
	0x007ffff,
	0x317ffff,
	0x232bfff,
	0x861bfff,
	0x49cbfff,
	0x92abfff,
	0xc56ffff,
	0xa633fff,
	0x3fdffff,
	0xd717fff,
	0x28abfff,
	0xbdaffff,
	0x1f27fff,
	0x1087fff,
	0xe7f7fff,
	0x2af3fff,
	0xfbbbfff,
	0x7217fff,
	0xf2e3fff,
	0x3603fff,
	0xb7effff,
	0x7bf7fff,
	0xeadffff,
	0xf2b7fff,
	0x5093fff,
	0xb48bfff,
	0x8e47fff,
	0xac27fff,
}

var B1CDataInit = [63]uint32{
	2678 + ((  699 - 1) << 14) + 0x80000000,
	4802 + ((  694 - 1) << 14) + 0x80000000,
	958 + (( 7318 - 1) << 14) + 0x80000000,
	859 + (( 2127 - 1) << 14) + 0x80000000,
	3843 + ((  715 - 1) << 14) + 0x80000000,
	2232 + (( 6682 - 1) << 14) + 0x80000000,
	124 + (( 7850 - 1) << 14) + 0x80000000,
	4352 + (( 5495 - 1) << 14) + 0x80000000,
	1816 + (( 1162 - 1) << 14) + 0x80000000,
	1126 + (( 7682 - 1) << 14) + 0x80000000,
	1860 + (( 6792 - 1) << 14) + 0x80000000,
	4800 + (( 9973 - 1) << 14) + 0x80000000,
	2267 + (( 6596 - 1) << 14) + 0x80000000,
	424 + (( 2092 - 1) << 14) + 0x80000000,
	4192 + ((   19 - 1) << 14) + 0x80000000,
	4333 + ((10151 - 1) << 14) + 0x80000000,
	2656 + (( 6297 - 1) << 14) + 0x80000000,
	4148 + (( 5766 - 1) << 14) + 0x80000000,
	243 + (( 2359 - 1) << 14) + 0x80000000,
	1330 + (( 7136 - 1) << 14) + 0x80000000,
	1593 + (( 1706 - 1) << 14) + 0x80000000,
	1470 + (( 2128 - 1) << 14) + 0x80000000,
	882 + (( 6827 - 1) << 14) + 0x80000000,
	3202 + ((  693 - 1) << 14) + 0x80000000,
	5095 + (( 9729 - 1) << 14) + 0x80000000,
	2546 + (( 1620 - 1) << 14) + 0x80000000,
	1733 + (( 6805 - 1) << 14) + 0x80000000,
	4795 + ((  534 - 1) << 14) + 0x80000000,
	4577 + ((  712 - 1) << 14) + 0x80000000,
	1627 + (( 1929 - 1) << 14) + 0x80000000,
	3638 + (( 5355 - 1) << 14) + 0x80000000,
	2553 + (( 6139 - 1) << 14) + 0x80000000,
	3646 + (( 6339 - 1) << 14) + 0x80000000,
	1087 + (( 1470 - 1) << 14) + 0x80000000,
	1843 + (( 6867 - 1) << 14) + 0x80000000,
	216 + (( 7851 - 1) << 14) + 0x80000000,
	2245 + (( 1162 - 1) << 14) + 0x80000000,
	726 + (( 7659 - 1) << 14) + 0x80000000,
	1966 + (( 1156 - 1) << 14) + 0x80000000,
	670 + (( 2672 - 1) << 14) + 0x80000000,
	4130 + (( 6043 - 1) << 14) + 0x80000000,
	53 + (( 2862 - 1) << 14) + 0x80000000,
	4830 + ((  180 - 1) << 14) + 0x80000000,
	182 + (( 2663 - 1) << 14) + 0x80000000,
	2181 + (( 6940 - 1) << 14) + 0x80000000,
	2006 + (( 1645 - 1) << 14) + 0x80000000,
	1080 + (( 1582 - 1) << 14) + 0x80000000,
	2288 + ((  951 - 1) << 14) + 0x80000000,
	2027 + (( 6878 - 1) << 14) + 0x80000000,
	271 + (( 7701 - 1) << 14) + 0x80000000,
	915 + (( 1823 - 1) << 14) + 0x80000000,
	497 + (( 2391 - 1) << 14) + 0x80000000,
	139 + (( 2606 - 1) << 14) + 0x80000000,
	3693 + ((  822 - 1) << 14) + 0x80000000,
	2054 + (( 6403 - 1) << 14) + 0x80000000,
	4342 + ((  239 - 1) << 14) + 0x80000000,
	3342 + ((  442 - 1) << 14) + 0x80000000,
	2592 + (( 6769 - 1) << 14) + 0x80000000,
	1007 + (( 2560 - 1) << 14) + 0x80000000,
	310 + (( 2502 - 1) << 14) + 0x80000000,
	4203 + (( 5072 - 1) << 14) + 0x80000000,
	455 + (( 7268 - 1) << 14) + 0x80000000,
	4318 + ((  341 - 1) << 14) + 0x80000000,
}

var B1CPilotInit = [63]uint32{
	796 + (( 7575 - 1) << 14) + 0x80000000,
	156 + (( 2369 - 1) << 14) + 0x80000000,
	4198 + (( 5688 - 1) << 14) + 0x80000000,
	3941 + ((  539 - 1) << 14) + 0x80000000,
	1374 + (( 2270 - 1) << 14) + 0x80000000,
	1338 + (( 7306 - 1) << 14) + 0x80000000,
	1833 + (( 6457 - 1) << 14) + 0x80000000,
	2521 + (( 6254 - 1) << 14) + 0x80000000,
	3175 + (( 5644 - 1) << 14) + 0x80000000,
	168 + (( 7119 - 1) << 14) + 0x80000000,
	2715 + (( 1402 - 1) << 14) + 0x80000000,
	4408 + (( 5557 - 1) << 14) + 0x80000000,
	3160 + (( 5764 - 1) << 14) + 0x80000000,
	2796 + (( 1073 - 1) << 14) + 0x80000000,
	459 + (( 7001 - 1) << 14) + 0x80000000,
	3594 + (( 5910 - 1) << 14) + 0x80000000,
	4813 + ((10060 - 1) << 14) + 0x80000000,
	586 + (( 2710 - 1) << 14) + 0x80000000,
	1428 + (( 1546 - 1) << 14) + 0x80000000,
	2371 + (( 6887 - 1) << 14) + 0x80000000,
	2285 + (( 1883 - 1) << 14) + 0x80000000,
	3377 + (( 5613 - 1) << 14) + 0x80000000,
	4965 + (( 5062 - 1) << 14) + 0x80000000,
	3779 + (( 1038 - 1) << 14) + 0x80000000,
	4547 + ((10170 - 1) << 14) + 0x80000000,
	1646 + (( 6484 - 1) << 14) + 0x80000000,
	1430 + (( 1718 - 1) << 14) + 0x80000000,
	607 + (( 2535 - 1) << 14) + 0x80000000,
	2118 + (( 1158 - 1) << 14) + 0x80000000,
	4709 + (( 526  - 1) << 14) + 0x80000000,
	1149 + (( 7331 - 1) << 14) + 0x80000000,
	3283 + (( 5844 - 1) << 14) + 0x80000000,
	2473 + (( 6423 - 1) << 14) + 0x80000000,
	1006 + (( 6968 - 1) << 14) + 0x80000000,
	3670 + (( 1280 - 1) << 14) + 0x80000000,
	1817 + (( 1838 - 1) << 14) + 0x80000000,
	771 + (( 1989 - 1) << 14) + 0x80000000,
	2173 + (( 6468 - 1) << 14) + 0x80000000,
	740 + (( 2091 - 1) << 14) + 0x80000000,
	1433 + (( 1581 - 1) << 14) + 0x80000000,
	2458 + (( 1453 - 1) << 14) + 0x80000000,
	3459 + (( 6252 - 1) << 14) + 0x80000000,
	2155 + (( 7122 - 1) << 14) + 0x80000000,
	1205 + (( 7711 - 1) << 14) + 0x80000000,
	413 + (( 7216 - 1) << 14) + 0x80000000,
	874 + (( 2113 - 1) << 14) + 0x80000000,
	2463 + (( 1095 - 1) << 14) + 0x80000000,
	1106 + (( 1628 - 1) << 14) + 0x80000000,
	1590 + (( 1713 - 1) << 14) + 0x80000000,
	3873 + (( 6102 - 1) << 14) + 0x80000000,
	4026 + (( 6123 - 1) << 14) + 0x80000000,
	4272 + (( 6070 - 1) << 14) + 0x80000000,
	3556 + (( 1115 - 1) << 14) + 0x80000000,
	128 + (( 8047 - 1) << 14) + 0x80000000,
	1200 + (( 6795 - 1) << 14) + 0x80000000,
	130 + (( 2575 - 1) << 14) + 0x80000000,
	4494 + ((   53 - 1) << 14) + 0x80000000,
	1871 + (( 1729 - 1) << 14) + 0x80000000,
	3073 + (( 6388 - 1) << 14) + 0x80000000,
	4386 + ((  682 - 1) << 14) + 0x80000000,
	4098 + (( 5565 - 1) << 14) + 0x80000000,
	1923 + (( 7160 - 1) << 14) + 0x80000000,
	1176 + (( 2277 - 1) << 14) + 0x80000000,
}

var L1CDataInit = [63]uint32{
	5111 + ((  412 - 1) << 14) + 0xa0000000,
	5109 + ((  161 - 1) << 14) + 0xa0000000,
	5108 + ((    1 - 1) << 14) + 0xa0000000,
	5106 + ((  303 - 1) << 14) + 0xa0000000,
	5103 + ((  207 - 1) << 14) + 0xa0000000,
	5101 + (( 4971 - 1) << 14) + 0xa0000000,
	5100 + (( 4496 - 1) << 14) + 0xa0000000,
	5098 + ((    5 - 1) << 14) + 0xa0000000,
	5095 + (( 4557 - 1) << 14) + 0xa0000000,
	5094 + ((  485 - 1) << 14) + 0xa0000000,
	5093 + ((  253 - 1) << 14) + 0xa0000000,
	5091 + (( 4676 - 1) << 14) + 0xa0000000,
	5090 + ((    1 - 1) << 14) + 0xa0000000,
	5081 + ((   66 - 1) << 14) + 0xa0000000,
	5080 + (( 4485 - 1) << 14) + 0xa0000000,
	5069 + ((  282 - 1) << 14) + 0xa0000000,
	5068 + ((  193 - 1) << 14) + 0xa0000000,
	5054 + (( 5211 - 1) << 14) + 0xa0000000,
	5044 + ((  729 - 1) << 14) + 0xa0000000,
	5027 + (( 4848 - 1) << 14) + 0xa0000000,
	5026 + ((  982 - 1) << 14) + 0xa0000000,
	5014 + (( 5955 - 1) << 14) + 0xa0000000,
	5004 + (( 9805 - 1) << 14) + 0xa0000000,
	4980 + ((  670 - 1) << 14) + 0xa0000000,
	4915 + ((  464 - 1) << 14) + 0xa0000000,
	4909 + ((   29 - 1) << 14) + 0xa0000000,
	4893 + ((  429 - 1) << 14) + 0xa0000000,
	4885 + ((  394 - 1) << 14) + 0xa0000000,
	4832 + ((  616 - 1) << 14) + 0xa0000000,
	4824 + (( 9457 - 1) << 14) + 0xa0000000,
	4591 + (( 4429 - 1) << 14) + 0xa0000000,
	3706 + (( 4771 - 1) << 14) + 0xa0000000,
	5092 + ((  365 - 1) << 14) + 0xa0000000,
	4986 + (( 9705 - 1) << 14) + 0xa0000000,
	4965 + (( 9489 - 1) << 14) + 0xa0000000,
	4920 + (( 4193 - 1) << 14) + 0xa0000000,
	4917 + (( 9947 - 1) << 14) + 0xa0000000,
	4858 + ((  824 - 1) << 14) + 0xa0000000,
	4847 + ((  864 - 1) << 14) + 0xa0000000,
	4790 + ((  347 - 1) << 14) + 0xa0000000,
	4770 + ((  677 - 1) << 14) + 0xa0000000,
	4318 + (( 6544 - 1) << 14) + 0xa0000000,
	4126 + (( 6312 - 1) << 14) + 0xa0000000,
	3961 + (( 9804 - 1) << 14) + 0xa0000000,
	3790 + ((  278 - 1) << 14) + 0xa0000000,
	4911 + (( 9461 - 1) << 14) + 0xa0000000,
	4881 + ((  444 - 1) << 14) + 0xa0000000,
	4827 + (( 4839 - 1) << 14) + 0xa0000000,
	4795 + (( 4144 - 1) << 14) + 0xa0000000,
	4789 + (( 9875 - 1) << 14) + 0xa0000000,
	4725 + ((  197 - 1) << 14) + 0xa0000000,
	4675 + (( 1156 - 1) << 14) + 0xa0000000,
	4539 + (( 4674 - 1) << 14) + 0xa0000000,
	4535 + ((10035 - 1) << 14) + 0xa0000000,
	4458 + (( 4504 - 1) << 14) + 0xa0000000,
	4197 + ((    5 - 1) << 14) + 0xa0000000,
	4096 + (( 9937 - 1) << 14) + 0xa0000000,
	3484 + ((  430 - 1) << 14) + 0xa0000000,
	3481 + ((    5 - 1) << 14) + 0xa0000000,
	3393 + ((  355 - 1) << 14) + 0xa0000000,
	3175 + ((  909 - 1) << 14) + 0xa0000000,
	2360 + (( 1622 - 1) << 14) + 0xa0000000,
	1852 + (( 6284 - 1) << 14) + 0xa0000000,
}

var L1CPilotInit = [63]uint32{
	5097 + ((  181 - 1) << 14) + 0xa0000000,
	5110 + ((  359 - 1) << 14) + 0xa0000000,
	5079 + ((   72 - 1) << 14) + 0xa0000000,
	4403 + (( 1110 - 1) << 14) + 0xa0000000,
	4121 + (( 1480 - 1) << 14) + 0xa0000000,
	5043 + (( 5034 - 1) << 14) + 0xa0000000,
	5042 + (( 4622 - 1) << 14) + 0xa0000000,
	5104 + ((    1 - 1) << 14) + 0xa0000000,
	4940 + (( 4547 - 1) << 14) + 0xa0000000,
	5035 + ((  826 - 1) << 14) + 0xa0000000,
	4372 + (( 6284 - 1) << 14) + 0xa0000000,
	5064 + (( 4195 - 1) << 14) + 0xa0000000,
	5084 + ((  368 - 1) << 14) + 0xa0000000,
	5048 + ((    1 - 1) << 14) + 0xa0000000,
	4950 + (( 4796 - 1) << 14) + 0xa0000000,
	5019 + ((  523 - 1) << 14) + 0xa0000000,
	5076 + ((  151 - 1) << 14) + 0xa0000000,
	3736 + ((  713 - 1) << 14) + 0xa0000000,
	4993 + (( 9850 - 1) << 14) + 0xa0000000,
	5060 + (( 5734 - 1) << 14) + 0xa0000000,
	5061 + ((   34 - 1) << 14) + 0xa0000000,
	5096 + (( 6142 - 1) << 14) + 0xa0000000,
	4983 + ((  190 - 1) << 14) + 0xa0000000,
	4783 + ((  644 - 1) << 14) + 0xa0000000,
	4991 + ((  467 - 1) << 14) + 0xa0000000,
	4815 + (( 5384 - 1) << 14) + 0xa0000000,
	4443 + ((  801 - 1) << 14) + 0xa0000000,
	4769 + ((  594 - 1) << 14) + 0xa0000000,
	4879 + (( 4450 - 1) << 14) + 0xa0000000,
	4894 + (( 9437 - 1) << 14) + 0xa0000000,
	4985 + (( 4307 - 1) << 14) + 0xa0000000,
	5056 + (( 5906 - 1) << 14) + 0xa0000000,
	4921 + ((  378 - 1) << 14) + 0xa0000000,
	5036 + (( 9448 - 1) << 14) + 0xa0000000,
	4812 + (( 9432 - 1) << 14) + 0xa0000000,
	4838 + (( 5849 - 1) << 14) + 0xa0000000,
	4855 + (( 5547 - 1) << 14) + 0xa0000000,
	4904 + (( 9546 - 1) << 14) + 0xa0000000,
	4753 + (( 9132 - 1) << 14) + 0xa0000000,
	4483 + ((  403 - 1) << 14) + 0xa0000000,
	4942 + (( 3766 - 1) << 14) + 0xa0000000,
	4813 + ((    3 - 1) << 14) + 0xa0000000,
	4957 + ((  684 - 1) << 14) + 0xa0000000,
	4618 + (( 9711 - 1) << 14) + 0xa0000000,
	4669 + ((  333 - 1) << 14) + 0xa0000000,
	4969 + (( 6124 - 1) << 14) + 0xa0000000,
	5031 + ((10216 - 1) << 14) + 0xa0000000,
	5038 + (( 4251 - 1) << 14) + 0xa0000000,
	4740 + (( 9893 - 1) << 14) + 0xa0000000,
	4073 + (( 9884 - 1) << 14) + 0xa0000000,
	4843 + (( 4627 - 1) << 14) + 0xa0000000,
	4979 + (( 4449 - 1) << 14) + 0xa0000000,
	4867 + (( 9798 - 1) << 14) + 0xa0000000,
	4964 + ((  985 - 1) << 14) + 0xa0000000,
	5025 + (( 4272 - 1) << 14) + 0xa0000000,
	4579 + ((  126 - 1) << 14) + 0xa0000000,
	4390 + ((10024 - 1) << 14) + 0xa0000000,
	4763 + ((  434 - 1) << 14) + 0xa0000000,
	4612 + (( 1029 - 1) << 14) + 0xa0000000,
	4784 + ((  561 - 1) << 14) + 0xa0000000,
	3716 + ((  289 - 1) << 14) + 0xa0000000,
	4703 + ((  638 - 1) << 14) + 0xa0000000,
	4851 + (( 4353 - 1) << 14) + 0xa0000000,
}

var B2aDataInit = [63]uint32{
	0x0a40bffe,
	0x02c0bffe,
	0x0b50bffe,
	0x0f28bffe,
	0x0aa8bffe,
	0x0758fffe,
	0x0778fffe,
	0x0df8bffe,
	0x094cbffe,
	0x05bcfffe,
	0x0ac2bffe,
	0x0222bffe,
	0x0aa2bffe,
	0x0da2bffe,
	0x03a2fffe,
	0x0c52fffe,
	0x0ef2fffe,
	0x080afffe,
	0x07cafffe,
	0x0d5abffe,
	0x08dabffe,
	0x0ca6bffe,
	0x0466bffe,
	0x0196bffe,
	0x06d6bffe,
	0x04f6fffe,
	0x0ff6fffe,
	0x048ebffe,
	0x03cebffe,
	0x085efffe,
	0x013ebffe,
	0x02bebffe,
	0x0d7ebffe,
	0x0cfefffe,
	0x08a1bffe,
	0x0291bffe,
	0x0ed1bffe,
	0x0889fffe,
	0x0989fffe,
	0x0d59fffe,
	0x08d9fffe,
	0x04b9fffe,
	0x0aa5fffe,
	0x02e5bffe,
	0x0d35bffe,
	0x0eadfffe,
	0x02c3fffe,
	0x0c13fffe,
	0x0d13fffe,
	0x0c53fffe,
	0x0153fffe,
	0x0dcbfffe,
	0x0e9bbffe,
	0x0127fffe,
	0x0297fffe,
	0x0997fffe,
	0x05b7fffe,
	0x01f7bffe,
	0x0ff7fffe,
	0x0adffffe,
	0x04023ffe,
	0x0afdbffe,
	0x04bc7ffe,
}

var B2aPilotInit = [63]uint32{
	0x0a40fffe,
	0x02c0bffe,
	0x0b50fffe,
	0x0f28fffe,
	0x0aa8bffe,
	0x0758bffe,
	0x0778fffe,
	0x0df8bffe,
	0x094cbffe,
	0x05bcbffe,
	0x0ac2fffe,
	0x0222bffe,
	0x0aa2fffe,
	0x0da2bffe,
	0x03a2bffe,
	0x0c52bffe,
	0x0ef2fffe,
	0x080afffe,
	0x07cabffe,
	0x0d5afffe,
	0x08dabffe,
	0x0ca6bffe,
	0x0466bffe,
	0x0196fffe,
	0x06d6fffe,
	0x04f6bffe,
	0x0ff6fffe,
	0x048efffe,
	0x03cefffe,
	0x085ebffe,
	0x013efffe,
	0x02befffe,
	0x0d7ebffe,
	0x0cfebffe,
	0x08a1fffe,
	0x0291fffe,
	0x0ed1bffe,
	0x0889fffe,
	0x0989fffe,
	0x0d59fffe,
	0x08d9bffe,
	0x04b9bffe,
	0x0aa5fffe,
	0x02e5fffe,
	0x0d35bffe,
	0x0eadfffe,
	0x02c3bffe,
	0x0c13fffe,
	0x0d13fffe,
	0x0c53bffe,
	0x0153bffe,
	0x0dcbfffe,
	0x0e9bbffe,
	0x0127bffe,
	0x0297fffe,
	0x0997bffe,
	0x05b7fffe,
	0x01f7fffe,
	0x0ff7fffe,
	0x0adfbffe,
	0x0612bffe,
	0x01fa7ffe,
	0x0aac7ffe,
}
